// Package instance loads and queries Sequential Ordering Problem (SOP) instances.
//
// What:
//
//   - An Instance is an immutable n×n integer matrix plus the precedence
//     structure derived from it. Location 0 is the fixed origin of every tour.
//   - matrix[i][j] < 0 encodes a precedence constraint: j must be visited
//     before i. Its magnitude carries no meaning.
//   - matrix[i][j] ≥ 0 is the cost of visiting j immediately after i.
//   - Diagonal entries are ignored, so Predecessors(i) and Successors(i)
//     partition {0..n-1} \ {i}.
//
// File format:
//
//	4
//	-1	0	3	4
//	-1	-1	0	2
//	-1	5	-1	0
//	-1	2	6	-1
//
// The first line holds n; each of the next n lines holds n tab-separated
// integers (empty tokens are skipped). Lines after the n-th row are ignored.
//
// Complexity:
//
//   - Load/Parse/New: O(n²) time and memory (one pass over the matrix).
//   - CostArc, IsPredecessor: O(1).
//   - CheckPrecedence: O(n²).
//   - TourCost, ValidateTour: O(n + Σ|pred|).
//
// Errors:
//
//   - ErrOpen, ErrEmpty, ErrBadSize, ErrRowLength, ErrBadToken, ErrMissingRows
//     from loading (wrapped with line context; match with errors.Is).
//   - ErrPrecedenceCycle, ErrOriginConstrained from CheckPrecedence.
//   - ErrInvalidTour, ErrPrecedenceViolated, ErrForbiddenArc from tour checks.
package instance
