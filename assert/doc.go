/*
Package assert provides runtime assertion support for the internal invariants of the structures in this module.

There are a few patterns that are supported:
  - Collecting many possible violations into one error, for consistency audits that report everything they find.
  - Assertions that panic with a [*Violation] if they are violated.
  - Removal of assertions with a build flag to maintain runtime performance.

To turn off assertions build with the 'noassert' flag.
For temporary changes, the Disable and Enable functions are also provided, but these should likely not be used in production code.
Collectors are not assertions, and are unaffected by either.
*/
package assert
