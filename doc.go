/*

Overview

This package is a GO implementation of weak AVL (WAVL) trees, the
rank-balanced search trees of Haeupler, Sen and Tarjan.  A WAVL tree has
the same worst-case height bound as an AVL tree (2 log n in general, and
exactly the AVL bound when built by insertions only), but after a deletion
it performs at most two rotations, and the amortized restructuring work
per operation is O(1).

This implementation is "intrusive", meaning that the tree node structure
must be embedded inside the data structure to be indexed in the tree.
This is the style commonly used in kernel data structures.  This is
actually the more general style of implementation; a generic key/value
container can be (and here, is) built on top of it.

Because GO has no safe equivalent of the C container_of macro, each node
carries an 'owner' field, an empty interface.  The function that hands a
node to the tree takes one additional parameter, a reference to the
containing structure, which is stashed in the owner field.  Any exported
function that yields a node back to the caller also exposes the owner,
and the caller recovers a usable pointer with a type assertion.  So a
typical usage looks like this:

 type myRecord struct {
      wavlHdr       wavl.Node
      id            int64
      xxx           float64
 }

 var rec myRecord

 rec.id = 12345
 rec.xxx = 3.14159

 tree.Insert(rec.id, &rec.wavlHdr, &rec)

 n, err := tree.Find(int64(12345))
 if err == nil {
     pp := n.Owner().(*myRecord)
     (do something here)
 }

Balance bookkeeping is one bit per node: the parity of the node's rank.
Every rebalancing decision the WAVL rules require can be expressed as
equalities and inequalities between parities, so the integer ranks
themselves are never stored.

This implementation is non-recursive, so it does not suffer from stack
overflows.

Features

Briefly, the supported operations are:

- Insertion, keyed or node-ordered
- Deletion
- Search
- In-order traversal (forwards and backwards)
- Post-order traversal
- A generic ordered map built on the intrusive core

The tree is single-threaded and non-reentrant: no operation may be
invoked from a comparator callback, and callers serialize access
themselves.

Files

- wavl.go      The intrusive core: node and tree representation, search,
               insertion, removal, and the WAVL rebalancing machinery.
               We follow the GO convention that "internal" functions
               begin with lower-case letters, and "exported" functions
               with upper-case letters

- traverse.go  In-order and post-order traversal

- ordered.go   A generic ordered map layered over the intrusive core

- errors.go    The error taxonomy

*/
package wavl
