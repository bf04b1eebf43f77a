package storage

import (
	"encoding/json"
	"io"

	"github.com/shamaton/msgpack/v2"

	"github.com/san-kum/dynarray/internal/workload"
)

type ExportData struct {
	Metadata RunMetadata         `json:"metadata" msgpack:"metadata"`
	Trace    []workload.Snapshot `json:"trace" msgpack:"trace"`
}

// Export gathers a stored run into a single value.
func (s *Store) Export(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	trace, err := s.LoadTrace(runID)
	if err != nil {
		return nil, err
	}
	return &ExportData{Metadata: *meta, Trace: trace}, nil
}

func ExportJSON(w io.Writer, data *ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportMsgpack(w io.Writer, data *ExportData) error {
	b, err := msgpack.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func DecodeMsgpack(r io.Reader) (*ExportData, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var data ExportData
	if err := msgpack.Unmarshal(b, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
