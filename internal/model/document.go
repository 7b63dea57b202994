// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the Study Buddy client.
package model

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DOCUMENT TYPE
// =============================================================================

// DocType is the file format of an ingested study document.
type DocType string

const (
	DocTypePDF  DocType = "pdf"
	DocTypeDOCX DocType = "docx"
	DocTypeTXT  DocType = "txt"
	DocTypeMD   DocType = "md"
)

// String returns the string representation of the document type.
func (t DocType) String() string {
	return string(t)
}

// Badge returns the upper-case format label for display.
func (t DocType) Badge() string {
	return strings.ToUpper(string(t))
}

// ParseDocType maps a file extension or type string (with or without the
// leading dot) to a DocType. Returns false for unsupported formats.
func ParseDocType(ext string) (DocType, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "pdf":
		return DocTypePDF, true
	case "docx":
		return DocTypeDOCX, true
	case "txt":
		return DocTypeTXT, true
	case "md", "markdown":
		return DocTypeMD, true
	default:
		return "", false
	}
}

// SupportedExtensions lists the accepted upload extensions, dot included.
// The filter is advisory only; real validation is the backend's job.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".txt", ".md"}
}

// IsSupportedFile reports whether the file name has an accepted extension.
func IsSupportedFile(name string) bool {
	_, ok := ParseDocType(filepath.Ext(name))
	return ok
}

// Document represents one ingested study file known to the backend.
//
// Name is the backend's identity for the document and the key used for
// selection and deletion; ID is a client-side handle only.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       DocType   `json:"type"`
	Chunks     int       `json:"chunks"`
	Pages      int       `json:"pages"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// NewDocument creates a fully-populated document after a confirmed upload.
func NewDocument(name string, docType DocType, chunks, pages int) *Document {
	return &Document{
		ID:         uuid.NewString(),
		Name:       name,
		Type:       docType,
		Chunks:     chunks,
		Pages:      pages,
		UploadedAt: time.Now(),
	}
}

// NewPlaceholderDocument creates a minimal document from a backend listing.
// Counts default to zero; the type is inferred from the name's extension.
func NewPlaceholderDocument(name string) *Document {
	docType, _ := ParseDocType(filepath.Ext(name))
	return &Document{
		ID:         uuid.NewString(),
		Name:       name,
		Type:       docType,
		UploadedAt: time.Now(),
	}
}

// =============================================================================
// LIBRARY (DOCUMENT REGISTRY)
// =============================================================================

// Library is the append-ordered collection of uploaded documents plus the
// active search filter selection. Insertion order is upload order; the
// list is never sorted.
type Library struct {
	docs     []*Document
	selected string
}

// NewLibrary creates an empty library with no selection.
func NewLibrary() *Library {
	return &Library{docs: make([]*Document, 0)}
}

// ReplaceAll reconciles the library against a backend listing. This is a
// reconciliation, not a pure rebuild: the listing carries names only, so
// names already known keep their document entry (chunk and page counts
// included) rather than resetting to zero. New names become placeholders
// with zero counts. A selection naming a document that is no longer
// listed is cleared.
func (l *Library) ReplaceAll(names []string) {
	docs := make([]*Document, 0, len(names))
	for _, name := range names {
		if existing := l.Get(name); existing != nil {
			docs = append(docs, existing)
		} else {
			docs = append(docs, NewPlaceholderDocument(name))
		}
	}
	l.docs = docs
	if l.selected != "" && l.Get(l.selected) == nil {
		l.selected = ""
	}
}

// Add appends a document after a confirmed upload. If a document with the
// same name already exists (the backend re-processed it), the entry is
// replaced in place so the name-uniqueness invariant holds and order is
// preserved.
func (l *Library) Add(doc *Document) {
	for i, existing := range l.docs {
		if existing.Name == doc.Name {
			l.docs[i] = doc
			return
		}
	}
	l.docs = append(l.docs, doc)
}

// Remove deletes a document by name. If the removed name is the current
// selection, the selection is cleared as part of the same call; there is
// no intermediate state where a removed document is still selected.
// Returns false if the name was not present.
func (l *Library) Remove(name string) bool {
	for i, doc := range l.docs {
		if doc.Name == name {
			l.docs = append(l.docs[:i], l.docs[i+1:]...)
			if l.selected == name {
				l.selected = ""
			}
			return true
		}
	}
	if l.selected == name {
		l.selected = ""
	}
	return false
}

// Select sets the active filter, or clears it when name is empty.
// Selecting a name not present in the library is allowed: the filter is
// advisory metadata sent to the backend, not a reference into the list.
func (l *Library) Select(name string) {
	l.selected = name
}

// Selected returns the active filter name, or "" when searching all
// documents.
func (l *Library) Selected() string {
	return l.selected
}

// Get returns the document with the given name, or nil.
func (l *Library) Get(name string) *Document {
	for _, doc := range l.docs {
		if doc.Name == name {
			return doc
		}
	}
	return nil
}

// Documents returns the documents in upload order.
func (l *Library) Documents() []*Document {
	return l.docs
}

// Names returns the document names in upload order.
func (l *Library) Names() []string {
	names := make([]string, len(l.docs))
	for i, doc := range l.docs {
		names[i] = doc.Name
	}
	return names
}

// Count returns the number of documents.
func (l *Library) Count() int {
	return len(l.docs)
}

// TotalChunks returns the sum of chunk counts across all documents.
func (l *Library) TotalChunks() int {
	total := 0
	for _, doc := range l.docs {
		total += doc.Chunks
	}
	return total
}

// IsEmpty returns true if the library holds no documents.
func (l *Library) IsEmpty() bool {
	return len(l.docs) == 0
}
