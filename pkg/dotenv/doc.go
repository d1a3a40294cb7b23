/*
Package dotenv implements a hand-written lexer and multi-file cascade for
shell-flavoured ".env" files.

The grammar supports export-prefixed assignments, single/double-quoted and
bare values, backslash escaping, variable interpolation with ":-" and ":="
modifiers, and opt-in "$(...)" command substitution. Parse errors carry the
exact file, line, and column of the violated rule.

Cascade resolves a base path (conventionally ".env") into the ordered set
of sibling files Symfony-style tooling loads — ".env", ".env.local",
".env.<env>", ".env.<env>.local" — and populates them into a process
environment under override-aware rules tracked by the NODE_DOTENV_VARS
sentinel.
*/
package dotenv
