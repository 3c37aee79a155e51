// file: internals/features/bimbel/timetable/service/overlap.go
package service

import "bimbelku_backend/internals/helpers/dbtime"

// Overlaps: dua rentang jam di hari yang sama bentrok atau tidak,
// semantik half-open [start, end): a.end == b.start berarti back-to-back
// dan TIDAK bentrok. Simetris.
//
// Satu-satunya predikat overlap di repo ini — probe cek-konflik dan
// pipeline create/update dua-duanya lewat sini (via ConflictDetector),
// jadi preview dan submit tidak mungkin beda keputusan.
func Overlaps(aStart, aEnd, bStart, bEnd dbtime.Tod) bool {
	return aStart.Minutes() < bEnd.Minutes() && bStart.Minutes() < aEnd.Minutes()
}
