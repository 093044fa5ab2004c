package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_IsAdmin(t *testing.T) {
	var nilProfile *Profile
	assert.False(t, nilProfile.IsAdmin())
	assert.False(t, (&Profile{Role: RoleUser}).IsAdmin())
	assert.True(t, (&Profile{Role: RoleAdmin}).IsAdmin())
}

func TestLoginResult_DecodesFlatPayload(t *testing.T) {
	raw := `{"id":7,"username":"alice","realName":"Alice","role":"admin","status":1,"token":"t.o.k"}`

	var res LoginResult
	require.NoError(t, json.Unmarshal([]byte(raw), &res))

	assert.Equal(t, "t.o.k", res.Token)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, "alice", res.Username)
	assert.True(t, res.Profile.IsAdmin())
}

func TestBookQuery_Values_SkipsZeroFields(t *testing.T) {
	off := BookOffShelf
	v := BookQuery{PageNum: 2, BookName: "Go", Status: &off}.Values()

	assert.Equal(t, "2", v.Get("pageNum"))
	assert.Equal(t, "Go", v.Get("bookName"))
	assert.Equal(t, "0", v.Get("status"))
	assert.False(t, v.Has("pageSize"))
	assert.False(t, v.Has("categoryId"))
}

func TestUserQuery_Values_UsesPageAndSize(t *testing.T) {
	v := UserQuery{Page: 1, Size: 20, Role: RoleAdmin}.Values()

	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "20", v.Get("size"))
	assert.Equal(t, "admin", v.Get("role"))
	assert.False(t, v.Has("username"))
}

func TestRecordQuery_Values(t *testing.T) {
	v := RecordQuery{UserID: 3, Status: BorrowOverdue}.Values()

	assert.Equal(t, "3", v.Get("userId"))
	assert.Equal(t, "overdue", v.Get("status"))
	assert.False(t, v.Has("bookId"))
}
