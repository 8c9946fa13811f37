package solve

import (
	"github.com/qualclust/qualclust/lpfile"
	"github.com/qualclust/qualclust/model"
)

// Exporter is the no-solver backend: it writes the model to Path in LP
// format and reports the model's dimensions. Objective and Groups stay
// zero-valued; an external solver owns those.
type Exporter struct {
	// Path is the destination LP file. Existing files are truncated.
	Path string
}

var _ Backend = (*Exporter)(nil)

// Consume serializes m to e.Path.
func (e *Exporter) Consume(m *model.Model) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := lpfile.Save(e.Path, m); err != nil {
		return nil, err
	}

	vars, cons := m.Stats()

	return &Result{NumRows: cons, NumCols: vars}, nil
}
