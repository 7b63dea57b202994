// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Study Buddy backend.
package api

import "github.com/jeranaias/studybuddy-tui/internal/model"

// =============================================================================
// WIRE TYPES
// =============================================================================

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	OllamaAvailable bool     `json:"ollama_available"`
	LLMReady        bool     `json:"llm_ready"`
	EmbeddingReady  bool     `json:"embedding_ready"`
	MissingModels   []string `json:"missing_models"`
}

// ToStatus converts the wire body into the domain snapshot. Both the answer
// model and the embedding model must be ready before the backend can answer.
func (r StatusResponse) ToStatus() model.SystemStatus {
	return model.SystemStatus{
		OllamaRunning: r.OllamaAvailable,
		ModelsReady:   r.LLMReady && r.EmbeddingReady,
		MissingModels: r.MissingModels,
		Checked:       true,
	}
}

// DocumentsResponse is the body of GET /documents.
type DocumentsResponse struct {
	Documents   []string `json:"documents"`
	Count       int      `json:"count"`
	TotalChunks int      `json:"total_chunks"`
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	DocumentsProcessed int `json:"documents_processed"`
	QuestionsAsked     int `json:"questions_asked"`
	ChunksRetrieved    int `json:"chunks_retrieved"`
}

// ToStats converts the wire body into the domain counters.
func (r StatsResponse) ToStats() model.SessionStats {
	return model.SessionStats{
		DocumentsProcessed: r.DocumentsProcessed,
		QuestionsAsked:     r.QuestionsAsked,
		ChunksRetrieved:    r.ChunksRetrieved,
	}
}

// UploadResponse is the body of POST /upload.
type UploadResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DocumentName string `json:"document_name"`
	FileType     string `json:"file_type"`
	NumChunks    int    `json:"num_chunks"`
	NumPages     int    `json:"num_pages"`
	Error        string `json:"error,omitempty"`
}

// AskRequest is the body of POST /ask. DocumentFilter restricts retrieval
// to one document; empty means search everything.
type AskRequest struct {
	Question       string `json:"question"`
	DocumentFilter string `json:"document_filter,omitempty"`
}

// SourceJSON is one citation entry in an ask response. Relevance arrives as
// a float percentage (for example 92.3) and is truncated to an int for
// display.
type SourceJSON struct {
	Document  string  `json:"document"`
	Page      int     `json:"page"`
	Content   string  `json:"content"`
	Relevance float64 `json:"relevance"`
}

// ToSource converts the wire citation into the domain type.
func (s SourceJSON) ToSource() model.Source {
	return model.Source{
		Document:  s.Document,
		Page:      s.Page,
		Content:   s.Content,
		Relevance: int(s.Relevance),
	}
}

// AskResponse is the body of POST /ask.
type AskResponse struct {
	Answer            string       `json:"answer"`
	Sources           []SourceJSON `json:"sources"`
	DocumentsSearched []string     `json:"documents_searched"`
	Error             string       `json:"error,omitempty"`
}

// ToSources converts the wire citations into domain sources, preserving
// backend order.
func (r AskResponse) ToSources() []model.Source {
	if len(r.Sources) == 0 {
		return nil
	}
	sources := make([]model.Source, len(r.Sources))
	for i, s := range r.Sources {
		sources[i] = s.ToSource()
	}
	return sources
}

// ActionResponse is the shared body of DELETE /documents/{name},
// POST /clear-chat and POST /clear-all.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ExportResponse is the body of GET /export.
type ExportResponse struct {
	Content string `json:"content"`
	Format  string `json:"format"`
}
