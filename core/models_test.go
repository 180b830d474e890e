package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %s vs %s", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestPublication_AwardsLabel(t *testing.T) {
	tests := []struct {
		name string
		pub  Publication
		want string
	}{
		{
			name: "no awards",
			pub:  Publication{},
			want: "none",
		},
		{
			name: "single award",
			pub:  Publication{Awards: []string{"best overall project"}},
			want: "best overall project",
		},
		{
			name: "multiple awards pipe-joined",
			pub:  Publication{Awards: []string{"best overall project", "most innovative project"}},
			want: "best overall project | most innovative project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pub.AwardsLabel(); got != tt.want {
				t.Errorf("AwardsLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChunk_MetadataRoundTrip(t *testing.T) {
	chunk := &Chunk{
		PublicationID: "pub-42",
		Title:         "Example Project",
		Author:        "someone",
		License:       "MIT",
		Awards:        "best overall project",
		Text:          "Title: Example Project",
		Index:         1,
		Total:         3,
	}

	rebuilt := ChunkFromMetadata(chunk.Text, chunk.Metadata())

	if *rebuilt != *chunk {
		t.Errorf("ChunkFromMetadata() = %+v, want %+v", rebuilt, chunk)
	}
}

func TestChunkFromMetadata_Defaults(t *testing.T) {
	chunk := ChunkFromMetadata("some text", map[string]string{MetaID: "p1"})

	if chunk.Awards != NoAwards {
		t.Errorf("Awards = %q, want %q", chunk.Awards, NoAwards)
	}
	if chunk.Index != 0 || chunk.Total != 0 {
		t.Errorf("Index/Total = %d/%d, want 0/0", chunk.Index, chunk.Total)
	}
}

func TestChunk_DocumentID_Stable(t *testing.T) {
	c1 := &Chunk{PublicationID: "p1", Text: "hello", Index: 0}
	c2 := &Chunk{PublicationID: "p1", Text: "hello", Index: 0}
	c3 := &Chunk{PublicationID: "p1", Text: "hello", Index: 1}

	if c1.DocumentID() != c2.DocumentID() {
		t.Errorf("DocumentID() not stable for identical chunks")
	}
	if c1.DocumentID() == c3.DocumentID() {
		t.Errorf("DocumentID() collision for different chunk indices")
	}
}
