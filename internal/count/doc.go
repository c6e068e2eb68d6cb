/*
Package count implements the tail count grammar `[+-]digits` and the offset
resolver shared by line mode and byte mode.

A parsed value is a Spec, which is one of two variants:

	All         print everything (a zero count anchored from the end)
	Anchored    a signed count; negative anchors from the end, positive
	            anchors from the start (1-indexed)

A count typed without a sign anchors from the end, exactly as if it were
written with a leading `-`. The Sign tag on Anchored remembers what was typed.
*/
package count
