package mask

// resolveSalt returns the literal salt string for salt, given the
// entity's already-transformed attribute values (for an
// attribute-referencing salt).
func resolveSalt(salt AttributeSalt, attributes map[string]string) (string, error) {
	switch {
	case salt.Value != "" && salt.Attribute != "":
		return "", ErrBadSaltConfig
	case salt.Attribute != "":
		value, ok := attributes[salt.Attribute]
		if !ok {
			return "", ErrMissingAttribute
		}
		return value, nil
	default:
		return salt.Value, nil
	}
}

// saltedToken builds the literal string a token is digested from: the
// resolved salt, optionally the attribute name, then the token itself.
func saltedToken(salt, attributeName, token string, prependAttributeName bool) string {
	if prependAttributeName {
		return salt + attributeName + token
	}
	return salt + token
}
