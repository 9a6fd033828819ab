/*
 * Copyright 2025 Poiesic Systems
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package extract

import "github.com/poiesic/regulo/core"

// categoryWeights rank how discriminating each entity category is when
// matching a query against a chunk. Unlisted categories weigh 1.0.
var categoryWeights = map[core.EntityCategory]float64{
	core.CategoryOrganization:   2.0,
	core.CategoryInstitute:      1.8,
	core.CategoryResearchCenter: 1.7,
	core.CategoryProgram:        1.6,
	core.CategoryFaculty:        1.5,
	core.CategoryDepartment:     1.5,
	core.CategoryCourse:         1.4,
	core.CategoryArticleNumber:  1.3,
	core.CategoryDate:           1.0,
	core.CategoryLocation:       1.0,
}

func weightOf(category core.EntityCategory) float64 {
	if w, ok := categoryWeights[category]; ok {
		return w
	}
	return 1.0
}

// Overlap scores how much of the query's entity set the chunk covers,
// weighted per category and normalized by the query side only. The
// result is clamped to [0, 1]; a query with no entities scores 0
// against everything.
func Overlap(query, chunk core.EntitySet) float64 {
	var matched, possible float64
	for _, category := range core.Categories() {
		queryValues := query.Fold(category)
		if len(queryValues) == 0 {
			continue
		}
		weight := weightOf(category)
		possible += weight * float64(len(queryValues))

		chunkValues := chunk.Fold(category)
		for value := range queryValues {
			if _, ok := chunkValues[value]; ok {
				matched += weight
			}
		}
	}
	if possible == 0 {
		return 0
	}
	score := matched / possible
	if score > 1 {
		score = 1
	}
	return score
}
