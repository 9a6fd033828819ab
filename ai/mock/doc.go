// Package mock provides test doubles for the ai package interfaces.
//
// The mocks default to deterministic behavior (FNV-seeded vectors, a
// canned answer, ACADEMIC_READY intent) and support behavior injection
// through their exported *Func fields. Call counts allow tests to
// assert which services a code path touched.
package mock
