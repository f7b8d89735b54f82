package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/store"
)

func report(kind types.ReportKind, at time.Time, code types.ErrorCode) types.Report {
	return types.Report{
		Kind:    kind,
		Curve:   "secp256r1",
		Started: at,
		Code:    code,
		Stages:  []types.StageResult{{Name: "RNG", Code: code, Duration: time.Millisecond}},
	}
}

func TestReports_SaveList_NewestFirst(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	var rs domain.ReportStore = store.NewReportFileStore(dir)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, kind := range []types.ReportKind{types.ReportPipeline, types.ReportBenchmark, types.ReportPipeline} {
		if err := rs.SaveReport(report(kind, base.Add(time.Duration(i)*time.Minute), types.CodeOK)); err != nil {
			t.Fatalf("save report %d: %v", i, err)
		}
	}

	all, err := rs.ListReports("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("want 3 reports, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Started.After(all[i-1].Started) {
			t.Fatalf("reports not newest first: %v after %v", all[i].Started, all[i-1].Started)
		}
	}

	pipes, err := rs.ListReports(types.ReportPipeline)
	if err != nil {
		t.Fatalf("list pipeline: %v", err)
	}
	if len(pipes) != 2 || !pipes[0].Started.Equal(base.Add(2*time.Minute)) {
		t.Fatalf("unexpected pipeline reports: %+v", pipes)
	}
	if pipes[0].Stages[0].Name != "RNG" || pipes[0].Stages[0].Duration != time.Millisecond {
		t.Fatalf("stage did not round-trip: %+v", pipes[0].Stages[0])
	}
}

func TestReports_FilesArePrivateAndNoTempLeft(t *testing.T) {
	dir := t.TempDir()
	rs := store.NewReportFileStore(dir)
	if err := rs.SaveReport(report(types.ReportConformance, time.Now(), types.ErrSigVerify)); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("want exactly one file, got %d", len(entries))
	}
	info, err := entries[0].Info()
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}

	got, err := rs.ListReports(types.ReportConformance)
	if err != nil || len(got) != 1 || got[0].Code != types.ErrSigVerify {
		t.Fatalf("list = %+v, %v", got, err)
	}
}

func TestReports_MissingDirIsEmpty(t *testing.T) {
	rs := store.NewReportFileStore(filepath.Join(t.TempDir(), "nope"))
	got, err := rs.ListReports("")
	if err != nil || len(got) != 0 {
		t.Fatalf("list = %v, %v", got, err)
	}
	if err := rs.SaveReport(types.Report{}); err == nil {
		t.Fatal("report without kind was saved")
	}
}

func TestReports_SkipsHiddenAndRejectsKindless(t *testing.T) {
	dir := t.TempDir()
	rs := store.NewReportFileStore(dir)
	if err := os.WriteFile(filepath.Join(dir, ".pipeline-1.json-123"), []byte("{"), 0o600); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".pipeline-2.json"), []byte("{"), 0o600); err != nil {
		t.Fatalf("write hidden: %v", err)
	}
	got, err := rs.ListReports("")
	if err != nil || len(got) != 0 {
		t.Fatalf("list = %v, %v", got, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "pipeline-3.json"), []byte("{}"), 0o600); err != nil {
		t.Fatalf("write kindless: %v", err)
	}
	if _, err := rs.ListReports(types.ReportPipeline); err == nil {
		t.Fatal("report without kind was listed")
	}
}
