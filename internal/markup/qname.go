// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package markup

import "strings"

// GlobalNamespace is the namespace assigned to tags written without a prefix.
const GlobalNamespace = "global"

// QualifiedTag is a tag name split into its namespace and local parts.
type QualifiedTag struct {
	Namespace string
	Name      string
}

// String returns the tag as it would be authored.
func (q QualifiedTag) String() string {
	if q.Namespace == GlobalNamespace {
		return q.Name
	}
	return q.Namespace + ":" + q.Name
}

// ParseQualifiedTag splits a raw tag name on its FIRST colon. No colon means
// the global namespace. A name with several colons is not rejected: the first
// segment becomes the namespace and everything after it, colons included,
// stays in the local name. That mirrors how authored markup has always been
// interpreted here; callers that need stricter QName validation must do it
// themselves.
func ParseQualifiedTag(tag string) (QualifiedTag, error) {
	if tag == "" {
		return QualifiedTag{}, &TagNameError{Tag: tag}
	}
	prefix, local, found := strings.Cut(tag, ":")
	if !found {
		return QualifiedTag{Namespace: GlobalNamespace, Name: tag}, nil
	}
	return QualifiedTag{Namespace: prefix, Name: local}, nil
}
