package measure

import (
	"testing"
	"time"
)

func TestSubmitLog(t *testing.T) {
	log := SubmitLog{}

	if !log.AddIfNew("g1", "fp1") {
		t.Errorf("first add should succeed")
	}
	if log.AddIfNew("g1", "fp1") {
		t.Errorf("repeat add should be rejected")
	}
	if !log.Exists("g1", "fp1") {
		t.Errorf("added item doesn't exist")
	}

	// Same group, new fingerprint (i.e. the group was edited)
	if !log.AddIfNew("g1", "fp2") {
		t.Errorf("new fingerprint for same group should be accepted")
	}
	// Same fingerprint, different group
	if !log.AddIfNew("g2", "fp1") {
		t.Errorf("same fingerprint for different group should be accepted")
	}

	log.Remove("g1", "fp1")
	if log.Exists("g1", "fp1") {
		t.Errorf("removed item still exists")
	}

	log.AgeOut(time.Nanosecond)
	time.Sleep(time.Millisecond)
	log.AgeOut(time.Nanosecond)
	if log.Exists("g1", "fp2") || log.Exists("g2", "fp1") {
		t.Errorf("aged-out items still exist: %s", log)
	}
}

func TestFingerprintPositions(t *testing.T) {
	base := []Position{ pt(0,0,0), pt(3,4,0) }

	fp := FingerprintPositions(base)
	if fp != "0.00,0.00,0.00;3.00,4.00,0.00;" {
		t.Errorf("unexpected fingerprint %q", fp)
	}

	// Sub-display jitter doesn't change the fingerprint
	jittered := []Position{ pt(0.001,0,0), pt(3,4.002,0) }
	if FingerprintPositions(jittered) != fp {
		t.Errorf("sub-display jitter changed the fingerprint")
	}

	// A visible move does
	moved := []Position{ pt(0,0,0), pt(3,4.01,0) }
	if FingerprintPositions(moved) == fp {
		t.Errorf("visible move kept the fingerprint")
	}
}
