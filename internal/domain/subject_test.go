package domain

import "testing"

func TestIsNetworkingSubjectIgnoresCase(t *testing.T) {
	if !IsNetworkingSubject("cs6") {
		t.Fatalf("expected cs6 to be recognized as a networking subject")
	}
	if IsNetworkingSubject("CS100") {
		t.Fatalf("CS100 is not a networking subject")
	}
}

func TestIsSingleSessionIsCaseSensitive(t *testing.T) {
	if !IsSingleSession("PE1") {
		t.Fatalf("expected PE1 to be single-session")
	}
	if IsSingleSession("pe1") {
		t.Fatalf("lowercase pe1 should not match; the check is exact-case")
	}
}

func TestServesProgramCrossListed(t *testing.T) {
	s := Subject{Program: ProgramCS, AvailablePrograms: []Program{ProgramIT}}
	if !s.ServesProgram(ProgramCS) {
		t.Fatalf("expected home program to match")
	}
	if !s.ServesProgram(ProgramIT) {
		t.Fatalf("expected cross-listed program to match")
	}
	if s.ServesProgram("ME") {
		t.Fatalf("unrelated program must not match")
	}
}

func TestIsLabSubject(t *testing.T) {
	if (Subject{LabHoursPerWeek: 0}).IsLabSubject() {
		t.Fatalf("zero lab hours is not a lab subject")
	}
	if !(Subject{LabHoursPerWeek: 1.5}).IsLabSubject() {
		t.Fatalf("positive lab hours is a lab subject")
	}
}
