// Package dataset loads categorical datasets into an immutable row×attribute
// matrix of string labels.
//
// 🚀 Input convention
//
//	One row per line; attribute values separated by runs of spaces or tabs;
//	blank lines are skipped. The label "?" marks a missing value and is
//	preserved verbatim — downstream similarity scoring compensates for it.
//
// ✨ Guarantees
//
//   - Every row has the same number of attributes, or Parse fails with
//     ErrRaggedRows annotated with the offending line number.
//   - The returned Matrix is never mutated after Parse; accessors hand out
//     copies where aliasing would allow mutation.
//   - Parsing is a pure function of the input bytes.
//
// ⚙️ Usage:
//
//	d, err := dataset.Load("lenses.data")
//	if err != nil {
//	  // ErrEmptyDataset, ErrRaggedRows, or a wrapped I/O error
//	}
//	fmt.Println(d.Rows(), d.Cols())
package dataset
