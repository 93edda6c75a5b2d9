package model

/*

# Shared value types

Entity and BitVectorEntity are the two value types that cross package
boundaries in this module: an Entity carries a record's raw or
transformed attribute values, and a BitVectorEntity carries an entity's
id alongside its masked bit vector in base64 wire form — the
representation the CLI reads and writes and the representation the
match package's similarity computation decodes from.

*/
