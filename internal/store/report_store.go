package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
)

const reportExt = ".json"

// ReportFileStore keeps one JSON file per report in a directory.
type ReportFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewReportFileStore returns a store rooted at dir. The directory is created
// on first save.
func NewReportFileStore(dir string) *ReportFileStore { return &ReportFileStore{dir: dir} }

// SaveReport writes r to <dir>/<kind>-<started unix nanos>.json.
func (s *ReportFileStore) SaveReport(r types.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Kind == "" {
		return fmt.Errorf("save report: missing kind")
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	name := fmt.Sprintf("%s-%d%s", r.Kind, r.Started.UnixNano(), reportExt)
	if err := encodeReport(filepath.Join(s.dir, name), r, 0o600); err != nil {
		return fmt.Errorf("save report %s: %w", name, err)
	}
	return nil
}

// ListReports returns the stored reports of kind, newest first. An empty
// kind lists every report. A missing directory yields no reports.
func (s *ReportFileStore) ListReports(kind types.ReportKind) ([]types.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list reports: %w", err)
	}

	var out []types.Report
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, reportExt) {
			continue
		}
		if kind != "" && !strings.HasPrefix(name, string(kind)+"-") {
			continue
		}
		r, ok, err := decodeReport(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", name, err)
		}
		if ok {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Started.After(out[j].Started) })
	return out, nil
}

// Compile-time assertion that ReportFileStore implements domain.ReportStore.
var _ domain.ReportStore = (*ReportFileStore)(nil)
