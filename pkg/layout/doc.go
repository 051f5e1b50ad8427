/*
Package layout computes step geometry for an orientation class.

A Profile holds the portrait placements of every step kind and one landscape
compression factor per slot. Landscape geometry is derived by scaling every
portrait spacing, inset and size of a slot by that slot's factor, so images
can shrink faster than text.

Layout is a pure function: every call returns a fresh domain.Geometry built
from the immutable profile, so applying it twice or flipping orientation back
and forth always lands on the same values.
*/
package layout
