package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// FileExporter writes each snapshot to order_<id>.json in a directory.
// A repeated export overwrites the previous file.
type FileExporter struct {
	dir string
}

func NewFileExporter(dir string) (*FileExporter, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("export dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return &FileExporter{dir: dir}, nil
}

// Path returns the file a snapshot with the given order id is written to.
func (e *FileExporter) Path(orderID string) string {
	return filepath.Join(e.dir, "order_"+orderID+".json")
}

func (e *FileExporter) Export(ctx context.Context, snapshot order.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snapshot.ID == "" {
		return errs.NewValueIsRequiredError("snapshot id")
	}

	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	// Write next to the target and rename, so readers never see half a file.
	tmp, err := os.CreateTemp(e.dir, ".order_"+snapshot.ID+"_*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err = os.Rename(tmp.Name(), e.Path(snapshot.ID)); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}
