/*
Package collx provides collection structures that I've found myself rewriting in a few different projects.
Each structure lives in its own package under structures, and none of them are safe for concurrent use unless stated otherwise.

The main attraction is [github.com/saylorsolutions/collx/structures/relation], a many-to-many relation that's indexed from both sides and never leaves empty keys behind.
*/
package collx
