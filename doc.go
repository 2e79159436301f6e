/*
Package railtrack tracks positions within railroad-style patterns.

Clients submit a pattern made of literal symbols and the operators

    ( … )    grouping
    [ … ]    optional
    { … }    zero or more
      |      alternation

and then play back input symbols one at a time. After every step the set of
literal occurrences which may consume the next symbol is reported. This is
the simulation of a Glushkov-style position automaton, with the current
state rendered as a dotted expression, e.g. `{.a}.b`.

Package structure is as follows:

■ pattern: Package pattern validates and parses patterns.

■ automaton: Package automaton computes epsilon-closures and transitions
between marker points of a pattern.

■ marker: Package marker implements dotted expressions and the operations
normalize, move, step, ID resolution and alphabet reporting.

■ engine: Package engine is the per-session core with step, replay and undo.

■ session, diagram, scanner: supporting packages.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The Railtrack Authors

*/
package railtrack
