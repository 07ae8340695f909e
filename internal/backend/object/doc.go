// Package object implements the nested object-array backend: N-dimensional
// arrays built from mutable reference containers whose slots hold either
// child containers one dimension lower or leaf values of any type.
//
// Every operation dispatches recursively on the number of dimensions left,
// bottoming out at scalar leaves. The Set family is copy-on-write and
// shares untouched subtrees with the original; SetInPlace, MajorSlice views
// and Broadcast deliberately alias containers, so an in-place write through
// one reference is visible through every other reference sharing it.
// Callers needing isolation use Set, DeepClone or ToNested.
//
// Shape consistency across siblings (rectangularity) is a caller
// invariant; it is not validated on construction.
package object
