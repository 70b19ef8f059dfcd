/*
Package inline provides the concrete style for runs of styled text.

An inline.Style is the fully resolved set of attributes for a run: font,
colors, decorations, paragraph style, link, text effect and an optional
attachment. Styles are plain values and compare by value.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package inline
