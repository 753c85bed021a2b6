package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/shaiso/Fleetview/internal/client"
)

// fakeAPI — заглушка management API для тестов отчётов.
type fakeAPI struct {
	groups       []client.Group
	groupsErr    error
	workers      []client.Worker
	workersErr   error
	inputs       []client.Input
	inputsErr    error
	outputs      []client.Output
	outputsErr   error
	pipelines    []client.Pipeline
	pipelinesErr error
	rules        []client.RouteRule
	routesErr    error
}

func (f *fakeAPI) ListGroups() ([]client.Group, error)   { return f.groups, f.groupsErr }
func (f *fakeAPI) ListWorkers() ([]client.Worker, error) { return f.workers, f.workersErr }
func (f *fakeAPI) ListInputs(string) ([]client.Input, error) {
	return f.inputs, f.inputsErr
}
func (f *fakeAPI) ListOutputs(string) ([]client.Output, error) {
	return f.outputs, f.outputsErr
}
func (f *fakeAPI) ListPipelines(string) ([]client.Pipeline, error) {
	return f.pipelines, f.pipelinesErr
}
func (f *fakeAPI) ListRoutes(string) ([]client.RouteRule, error) {
	return f.rules, f.routesErr
}

func TestGroupsAndWorkers_NestingAndUnassigned(t *testing.T) {
	api := &fakeAPI{
		groups: []client.Group{
			{ID: "g1", Name: "Prod", Product: "stream"},
		},
		workers: []client.Worker{
			{ID: "w1", Hostname: "w1", Status: "online", Group: "g1"},
			{ID: "w2", Hostname: "w2", Status: "offline", Group: "g9"},
		},
	}

	out, err := GroupsAndWorkers(api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "Group: Prod (1 workers)") {
		t.Errorf("expected group section with one worker, got:\n%s", out)
	}
	if !strings.Contains(out, "Unassigned workers (1)") {
		t.Errorf("expected unassigned bucket, got:\n%s", out)
	}

	groupIdx := strings.Index(out, "Group: Prod")
	unassignedIdx := strings.Index(out, "Unassigned workers")
	w1Idx := strings.Index(out, "w1")
	w2Idx := strings.Index(out, "w2")

	if !(groupIdx < w1Idx && w1Idx < unassignedIdx) {
		t.Errorf("w1 should be nested under its group, got:\n%s", out)
	}
	if w2Idx < unassignedIdx {
		t.Errorf("w2 should be under the unassigned bucket, got:\n%s", out)
	}
	if strings.Count(out, "w1") != 1 || strings.Count(out, "w2") != 1 {
		t.Errorf("each worker must appear exactly once, got:\n%s", out)
	}
	if !strings.Contains(out, "online") || !strings.Contains(out, "offline") {
		t.Errorf("worker statuses missing, got:\n%s", out)
	}
}

func TestGroupsAndWorkers_ConfigVersionColumn(t *testing.T) {
	api := &fakeAPI{
		groups: []client.Group{
			{ID: "g1", Name: "Prod", ConfigVersion: "cfg-42"},
			{ID: "g2"},
		},
	}

	out, err := GroupsAndWorkers(api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "CONFIG VER") {
		t.Errorf("expected config version column, got:\n%s", out)
	}
	if !strings.Contains(out, "cfg-42") {
		t.Errorf("expected config version value, got:\n%s", out)
	}
}

func TestGroupsAndWorkers_NestedWorkerVersion(t *testing.T) {
	api := &fakeAPI{
		groups: []client.Group{{ID: "g1"}},
		workers: []client.Worker{
			{
				ID:        "w1",
				Group:     "g1",
				Connected: true,
				Info: client.WorkerInfo{
					Hostname: "h1",
					Cribl:    client.CriblInfo{Version: "4.1.2"},
					Host:     client.WorkerHost{IP: "10.0.0.2"},
				},
			},
		},
	}

	out, err := GroupsAndWorkers(api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "4.1.2") {
		t.Errorf("expected nested platform version in worker table, got:\n%s", out)
	}
	if !strings.Contains(out, "10.0.0.2") {
		t.Errorf("expected worker IP in worker table, got:\n%s", out)
	}
}

func TestGroupsAndWorkers_EmptyGroup(t *testing.T) {
	api := &fakeAPI{
		groups: []client.Group{{ID: "g1", Name: "Idle"}},
	}

	out, err := GroupsAndWorkers(api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "no workers in this group.") {
		t.Errorf("expected empty group indicator, got:\n%s", out)
	}
}

func TestGroupsAndWorkers_GlobalFailureIsFatal(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeAPI
	}{
		{name: "groups fail", api: &fakeAPI{groupsErr: errors.New("boom")}},
		{name: "workers fail", api: &fakeAPI{
			groups:     []client.Group{{ID: "g1"}},
			workersErr: errors.New("boom"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := GroupsAndWorkers(tt.api)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if out != "" {
				t.Errorf("expected empty output on fatal failure, got:\n%s", out)
			}
		})
	}
}

func TestGroupDetail_SectionOrder(t *testing.T) {
	out := GroupDetail(&fakeAPI{}, "g1")

	sections := []string{"--- Sources ---", "--- Destinations ---", "--- Pipelines ---", "--- Routes ---"}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx < 0 {
			t.Fatalf("section %q missing, got:\n%s", s, out)
		}
		if idx < last {
			t.Errorf("section %q out of order, got:\n%s", s, out)
		}
		last = idx
	}
}

func TestGroupDetail_EmptySectionsRenderIndicator(t *testing.T) {
	out := GroupDetail(&fakeAPI{}, "g1")

	if got := strings.Count(out, "no items configured."); got != 4 {
		t.Errorf("expected 4 empty-section indicators, got %d:\n%s", got, out)
	}
}

func TestGroupDetail_PartialFailure(t *testing.T) {
	api := &fakeAPI{
		inputs:     []client.Input{{ID: "in-http", Type: "http", Port: 9000}},
		outputsErr: errors.New("upstream exploded"),
		pipelines:  []client.Pipeline{{ID: "parse"}},
		rules:      []client.RouteRule{{ID: "r1", Name: "main", Output: "s3"}},
	}

	out := GroupDetail(api, "g1")

	if !strings.Contains(out, "in-http") {
		t.Errorf("sources section missing, got:\n%s", out)
	}
	if !strings.Contains(out, "parse") {
		t.Errorf("pipelines section missing, got:\n%s", out)
	}
	if !strings.Contains(out, "main") {
		t.Errorf("routes section missing, got:\n%s", out)
	}
	if got := strings.Count(out, "! error:"); got != 1 {
		t.Errorf("expected exactly 1 inline error, got %d:\n%s", got, out)
	}

	destIdx := strings.Index(out, "--- Destinations ---")
	errIdx := strings.Index(out, "! error: upstream exploded")
	pipeIdx := strings.Index(out, "--- Pipelines ---")
	if !(destIdx < errIdx && errIdx < pipeIdx) {
		t.Errorf("inline error should sit inside the Destinations section, got:\n%s", out)
	}
}

func TestSummary_Totals(t *testing.T) {
	api := &fakeAPI{
		groups: []client.Group{{ID: "g1", Name: "Prod"}},
		workers: []client.Worker{
			{ID: "w1", Group: "g1", Status: "online"},
			{ID: "w2", Group: "g1", Status: "offline"},
		},
		inputs:    []client.Input{{ID: "i1"}, {ID: "i2"}},
		outputs:   []client.Output{{ID: "o1"}},
		pipelines: []client.Pipeline{{ID: "p1"}},
		rules:     []client.RouteRule{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}},
	}

	out, err := Summary(api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Worker Groups:   1",
		"Workers:         2 (1 online)",
		"Sources:         2",
		"Destinations:    1",
		"Pipelines:       1",
		"Routes:          3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in summary, got:\n%s", want, out)
		}
	}
}

func TestSummary_OnlineCountNormalizesStatus(t *testing.T) {
	api := &fakeAPI{
		groups: []client.Group{{ID: "g1"}},
		workers: []client.Worker{
			{ID: "w1", Group: "g1", Status: "Online"},
			{ID: "w2", Group: "g1", Status: "healthy", Connected: true},
			{ID: "w3", Group: "g1", Status: "offline"},
			{ID: "w4", Group: "g1"},
		},
	}

	out, err := Summary(api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Workers:         4 (2 online)") {
		t.Errorf("expected 2 workers counted online, got:\n%s", out)
	}
}

func TestSummary_PerGroupFailureIsNoted(t *testing.T) {
	api := &fakeAPI{
		groups:    []client.Group{{ID: "g1"}},
		inputsErr: errors.New("boom"),
		rules:     []client.RouteRule{{ID: "r1"}},
	}

	out, err := Summary(api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "group g1: sources:") {
		t.Errorf("expected failure note, got:\n%s", out)
	}
	if !strings.Contains(out, "Routes:          1") {
		t.Errorf("other totals should still be counted, got:\n%s", out)
	}
}
