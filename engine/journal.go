package engine

import "github.com/iw2rmb/dosedit/buffer"

// journal records the inverse of every line mutation made during one
// operation so a failed operation can put the document back.
type journal struct {
	doc  *buffer.Buffer
	undo []func() error
}

func (j *journal) setLine(i int, text string) error {
	old, err := j.doc.Line(i)
	if err != nil {
		return err
	}
	if err := j.doc.SetLine(i, text); err != nil {
		return err
	}
	j.undo = append(j.undo, func() error { return j.doc.SetLine(i, old) })
	return nil
}

func (j *journal) insertLine(i int, text string) error {
	if err := j.doc.InsertLine(i, text); err != nil {
		return err
	}
	j.undo = append(j.undo, func() error { return j.doc.DeleteLine(i) })
	return nil
}

func (j *journal) deleteLine(i int) error {
	old, err := j.doc.Line(i)
	if err != nil {
		return err
	}
	if err := j.doc.DeleteLine(i); err != nil {
		return err
	}
	j.undo = append(j.undo, func() error { return j.doc.InsertLine(i, old) })
	return nil
}

// rollback replays the inverses newest first.
func (j *journal) rollback() {
	for k := len(j.undo) - 1; k >= 0; k-- {
		_ = j.undo[k]()
	}
	j.undo = nil
}
