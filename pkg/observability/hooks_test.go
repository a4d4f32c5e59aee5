package observability

import (
	"testing"
)

type recordingMapperHooks struct {
	lookups    []string
	configures []string
	rejects    []string
}

func (r *recordingMapperHooks) OnLookup(name string) {
	r.lookups = append(r.lookups, name)
}

func (r *recordingMapperHooks) OnConfigure(name string, chain, parallel int, param string) {
	r.configures = append(r.configures, name)
}

func (r *recordingMapperHooks) OnReject(name string, err error) {
	r.rejects = append(r.rejects, name)
}

func TestMapperHooksRegistration(t *testing.T) {
	defer Reset()

	rec := &recordingMapperHooks{}
	SetMapperHooks(rec)

	Mapper().OnLookup("Rotate")
	Mapper().OnConfigure("Rotate", 2, 1, "90")

	if len(rec.lookups) != 1 || rec.lookups[0] != "Rotate" {
		t.Errorf("lookups = %v, want [Rotate]", rec.lookups)
	}
	if len(rec.configures) != 1 {
		t.Errorf("configures = %v, want one entry", rec.configures)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingMapperHooks{}
	SetMapperHooks(rec)
	SetMapperHooks(nil)

	Mapper().OnLookup("Mirror")
	if len(rec.lookups) != 1 {
		t.Error("nil registration should keep the previous hooks")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingMapperHooks{}
	SetMapperHooks(rec)
	Reset()

	Mapper().OnLookup("Mirror")
	if len(rec.lookups) != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
