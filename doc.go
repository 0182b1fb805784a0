/*
Package textdb is a read-only, index-free query engine over sorted,
delimited text files. A table is generated once by any external tool,
sorted by one column, and then queried repeatedly for equal keys or key
ranges. Lookups binary-search the raw bytes directly, so a memory-mapped
file much larger than RAM can be queried in O(log n) probes without a
load step or a separate index.

Data Structure Documentation

Table

A table is a flat sequence of records, each terminated by a delimiter
byte (default '\n'). The terminator of the last record is optional.

    Table layout:
    +----------+---+----------+---+-------+---+----------+-------+
    | record 1 | \n| record 2 | \n|  ...  | \n| record n | (\n)  |
    +----------+---+----------+---+-------+---+----------+-------+

Record

A record is a series of columns divided by a separator byte (default
'\t'). One column is the key column; the rest is payload.

    Record layout:
    +-----------------+---+----------+---+-------+---+----------+
    | column 0 (key)  | \t| column 1 | \t|  ...  | \t| column n |
    +-----------------+---+----------+---+-------+---+----------+

There is no quoting or escaping: a delimiter or separator byte inside the
data always ends a record or a column. Producers must not emit them as
data.

Sortedness

Queries assume that for all adjacent records key(r[i]) <= key(r[i+1])
under the table's Accessor. This is not checked on every query; a table
that violates it returns well-defined but logically wrong results.
Table.IsSorted verifies the property in a single O(n) pass.

Search

A probe picks the byte offset in the middle of the current window and
scans backwards and forwards for delimiters to recover the enclosing
record. Each probe either moves the lower bound past the end of the
probed record or the upper bound to its start, so the window strictly
shrinks and the search terminates after O(log size) probes, regardless
of duplicates or record length variance.

Concurrency

Tables are immutable and may be queried concurrently. Iterators are not
safe for concurrent use. Slices returned by a table or its iterators
borrow from the underlying Source and must not be used after the table
is closed.
*/
package textdb
