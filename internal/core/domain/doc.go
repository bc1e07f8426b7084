// Package domain contains the core business entities of the Prime
// assistant: the intent catalog types, annotated documents, query
// results, the bounded context buffer, and assistant settings.
//
// The domain layer has no dependencies on adapters or external
// libraries. All types here are plain data; behaviour lives in the
// services layer.
package domain
