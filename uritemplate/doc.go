/*

Package uritemplate expands RFC 6570 URI Templates.

A template is literal text interleaved with {expr} placeholders.
[Expand] walks the template once, copying literals verbatim and handing each
expression to a caller-supplied [Provider] along with the [Config] resolved
from the expression's operator. The Provider looks up the variable and emits
its value - scalar, list, or map - through the Append helpers, which apply the
operator's prefix, joiner, name-assignment, and escaping rules so the Provider
never needs to know which operator produced the expression.

Expansion is best-effort: a variable the Provider cannot resolve stays in the
output as its literal {expr} text and the last such failure becomes Expand's
returned error, while the rest of the template still expands. Only a
structurally malformed template - an unterminated "{" - aborts the walk.
Callers accepting partial expansion should discard the returned error
deliberately rather than by omission.

The full template grammar is at https://www.rfc-editor.org/rfc/rfc6570.

*/
package uritemplate
