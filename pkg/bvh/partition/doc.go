// Package partition implements the nth-element selection strategies the
// tree builder uses to split a primitive range around its median (or any
// other rank) along the chosen axis.
//
// Every Strategy in this package honors the same contract as C++'s
// std::nth_element: after Select(s, k, less), s[k] holds the element that
// would occupy position k were s fully sorted by less, every element
// before k compares less-or-equal to s[k], and every element after k
// compares greater-or-equal. The strategies differ only in how much work
// they do to reach that state and in their worst-case guarantees; none of
// them fully sorts s.
package partition
