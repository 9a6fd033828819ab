// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package answer

import (
	"fmt"
	"strings"

	"github.com/poiesic/regulo/core"
)

// systemPrompt constrains generation to the supplied regulation text.
const systemPrompt = `Sen Hacettepe Üniversitesi'nin akademik mevzuat asistanısın. Görevin, öğrencilerin yönetmelik ve yönergelerle ilgili sorularını SADECE aşağıda verilen belge parçalarına dayanarak yanıtlamaktır.

Kurallar:
- Yalnızca verilen belge parçalarındaki bilgileri kullan. Kendi bilgini ekleme.
- Cevabın dayandığı maddeleri ve belgeleri belirt.
- Verilen parçalar soruyu yanıtlamak için yetersizse, bunu açıkça söyle.
- Resmi ama anlaşılır bir Türkçe kullan.`

const (
	greetingText = "Merhaba! Ben Hacettepe Üniversitesi akademik mevzuat asistanıyım. " +
		"Yönetmelikler, yönergeler, kayıt, sınavlar ve mezuniyet gibi konulardaki sorularınızı yanıtlayabilirim."

	nonAcademicText = "Bu soru akademik mevzuat kapsamının dışında görünüyor. " +
		"Size üniversite yönetmelikleri, kayıt işlemleri, sınavlar, yatay geçiş ve mezuniyet gibi konularda yardımcı olabilirim."

	clarificationText = "Sorunuzu biraz daha netleştirebilir misiniz? Örneğin:\n" +
		"- Yatay geçiş başvuru şartları nelerdir?\n" +
		"- Bir dersten devamsızlık sınırı kaçtır?\n" +
		"- Mezuniyet için kaç AKTS gerekir?"

	noResultsText = "Bu konu hakkında elimdeki akademik belgelerde yeterli bilgi bulunmamaktadır."

	generationFailedText = "Üzgünüm, şu anda cevabınızı oluştururken bir sorun yaşadım. " +
		"Lütfen birazdan tekrar deneyin."
)

// buildPrompt assembles the generation prompt from the system prompt,
// the retrieved chunks and the user's question. Each chunk is labeled
// with its source file so the model can cite it.
func buildPrompt(query string, chunks []core.ScoredChunk) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nBelge parçaları:\n")
	for _, chunk := range chunks {
		fmt.Fprintf(&b, "\n--- Chunk from %s ---\n%s\n", chunk.Source, chunk.Text)
	}
	b.WriteString("\nSoru: ")
	b.WriteString(query)
	b.WriteString("\n\nCevap:")
	return b.String()
}
