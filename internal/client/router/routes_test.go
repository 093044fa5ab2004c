package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_BuiltinTable(t *testing.T) {
	require.NoError(t, Validate(Routes()))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		routes []Route
	}{
		{"admin without auth", []Route{{Path: "/x", RequiresAdmin: true}}},
		{"relative path", []Route{{Path: "x"}}},
		{"duplicate path", []Route{{Path: "/x"}, {Path: "/x"}}},
		{"duplicate name", []Route{{Name: "X", Path: "/x"}, {Name: "X", Path: "/y"}}},
		{"dangling alias", []Route{{Path: "/", Redirect: "/nowhere"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, Validate(tt.routes), ErrInvalidRoute)
			_, err := NewTable(tt.routes)
			require.Error(t, err)
		})
	}
}

func TestTable_Match(t *testing.T) {
	table, err := NewTable(Routes())
	require.NoError(t, err)

	tests := []struct {
		path     string
		wantName string
		params   map[string]string
	}{
		{"/", "Root", nil},
		{"", "Root", nil},
		{"/books", "BookList", nil},
		{"/books/", "BookList", nil},
		{"/books/42", "BookDetail", map[string]string{"id": "42"}},
		{"/books/42?tab=reviews", "BookDetail", map[string]string{"id": "42"}},
		{"users", "Users", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			loc, ok := table.Match(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, loc.Route.Name)
			assert.Equal(t, tt.params, loc.Params)
		})
	}

	for _, p := range []string{"/nope", "/books/1/2", "/my-borrows/3"} {
		_, ok := table.Match(p)
		assert.False(t, ok, p)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Books - Library Management System", Title(Route{Title: "Books"}))
	assert.Equal(t, "Library Management System", Title(Route{}))
}
