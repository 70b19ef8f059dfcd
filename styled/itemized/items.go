/*
Package itemized iterates over the style runs of a styled text.

	iter := itemized.IterateText(text)
	for iter.Next() {
		sty, from, to := iter.Style()
		fmt.Printf("%v: %q\n", sty, iter.Text())
	}

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package itemized

import "github.com/npillmayer/textengine/styled"

// Iterator is a pull-iterator over style runs.
type Iterator struct {
	runs    []styled.StyleChange
	raw     string
	offset  uint64 // text position of raw[0]
	inx     int
	lastErr error
}

// IterateText creates an iterator for the style runs of a text.
func IterateText(text *styled.Text) *Iterator {
	return &Iterator{
		runs: text.StyleRuns(),
		raw:  text.Raw(),
	}
}

// IterateParagraphText creates an iterator for the style runs of a paragraph.
// Run positions include the paragraph's offset.
func IterateParagraphText(para *styled.Paragraph) *Iterator {
	it := &Iterator{
		runs: para.StyleRuns(),
		raw:  para.Raw(),
	}
	if len(it.runs) > 0 {
		it.offset = it.runs[0].Position
	}
	return it
}

// Next moves to the next style run. It returns false if no more runs are left.
func (it *Iterator) Next() bool {
	if it.lastErr != nil || it.inx >= len(it.runs) {
		return false
	}
	it.inx++
	s := it.runs[it.inx-1]
	if s.Position < it.offset || s.Position+s.Length-it.offset > uint64(len(it.raw)) {
		it.lastErr = styled.ErrIndexOutOfBounds
		return false
	}
	return true
}

// LastError returns the error which stopped the iteration, if any.
func (it *Iterator) LastError() error {
	return it.lastErr
}

// Style returns the style at the current iterator position, together with
// the text indices [from…to) of the style run.
func (it *Iterator) Style() (styled.Style, uint64, uint64) {
	if it.inx == 0 || it.lastErr != nil {
		return nil, 0, 0
	}
	s := it.runs[it.inx-1]
	return s.Style, s.Position, s.Position + s.Length
}

// Text returns the content of the current style run.
func (it *Iterator) Text() string {
	_, from, to := it.Style()
	if from == to {
		return ""
	}
	return it.raw[from-it.offset : to-it.offset]
}
