/*
Package domain contains the core domain models for the Tendril simulator.

It defines the fundamental entities of a nondeterministic Turing machine,
such as the Machine definition, its Transitions, and the tape Configuration,
plus the Result value produced by a bounded simulation run. This package is
kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - Machine: the full machine definition (states, alphabets, transitions).
  - Transition: one rewrite rule. Several rules may share the same
    (From, Read) pair; that overlap is the sole source of nondeterminism.
  - Configuration: a snapshot of one computation branch, i.e. the tape split
    around the head plus the control state. Immutable once created.
  - Result: final status, explored trace, level count and branching metric
    of one bounded run.
  - LifecycleHooks: optional callbacks for engine observability.
*/
package domain
