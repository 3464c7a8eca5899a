package measure

import (
	"fmt"
	"time"
)

// SubmitLog remembers which (group, fingerprint) pairs have already been
// submitted, so an unmodified measurement can't be submitted twice. Any edit
// to the group changes its fingerprint and re-arms submission.

type SubmitItem struct {
	Created     time.Time
	Fingerprint string
}

type SubmitLog map[string]SubmitItem

func (s SubmitLog)String() string {
	str := "{"
	for k,_ := range s {
		str += " " + k
	}
	return str + " }"
}

func submitKey(groupId, fingerprint string) string {
	return groupId + ":" + fingerprint
}

func (s SubmitLog)Exists(groupId, fingerprint string) bool {
	_,exists := s[submitKey(groupId, fingerprint)]
	return exists
}

func (s SubmitLog)AddIfNew(groupId, fingerprint string) (addedOk bool) {
	if s.Exists(groupId, fingerprint) {
		return false
	}
	s[submitKey(groupId, fingerprint)] = SubmitItem{ time.Now().UTC(), fingerprint }
	return true
}

func (s SubmitLog)AgeOut(d time.Duration) {
	for k,v := range s {
		if time.Since(v.Created) > d {
			delete (s, k)
		}
	}
}

func (s SubmitLog)Remove(groupId, fingerprint string) {
	delete (s, submitKey(groupId, fingerprint))
}

// FingerprintPositions reduces a chain to rounded coordinate triples. Rounding
// matches the display precision, so sub-display jitter doesn't re-arm
// submission.
func FingerprintPositions(positions []Position) string {
	str := ""
	for _,p := range positions {
		str += fmt.Sprintf("%.2f,%.2f,%.2f;", p.X, p.Y, p.Z)
	}
	return str
}
