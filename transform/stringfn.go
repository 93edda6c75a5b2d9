package transform

// StringTransformFn maps one string value to another. It may return an
// error if the input cannot be transformed (e.g. an unmapped value with
// no default, or a number/date that fails to parse).
type StringTransformFn func(string) (string, error)
