package similarity

/*

# Bit-vector similarity measures

Dice, Cosine, and Jaccard similarity, each computed from the same three
numbers: the popcount of each operand and the popcount of their
bitwise AND. Both operands must have equal length.

When both operands are all-zero (na = nb = 0), every measure here
returns 0 rather than dividing by zero — a deliberate convention this
module documents explicitly, since the reference implementation these
measures are drawn from does not guard against that case at all.

*/
