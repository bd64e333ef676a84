package ppfmt

// Join interposes sep between each of docs, mirroring how scandown exposes
// small combinators (quoteMarker, listMarker, delimiter) atop its core scan
// loop rather than leaving every caller to hand-roll separator logic.
func Join(sep Doc, docs ...Doc) Doc {
	if len(docs) == 0 {
		return Concat()
	}
	out := make([]Doc, 0, len(docs)*2-1)
	out = append(out, docs[0])
	for _, d := range docs[1:] {
		out = append(out, sep, d)
	}
	return Concat(out...)
}

// Bracket wraps d in open/close delimiters inside a Group, the common
// "delimited, breakable body" shape used by serializers: print_string(open),
// a Nest(2) holding a leading SoftLine + d, then a trailing SoftLine and
// print_string(close). The Nest compiles to open_box(2)/close_box, not to a
// second Group.
func Bracket(open, close string, d Doc) Doc {
	return Group(Concat(
		Text(open),
		Nest(2, Concat(SoftLine, d)),
		SoftLine,
		Text(close),
	))
}
