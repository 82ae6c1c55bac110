package list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSequence(t *testing.T) {
	var l List[int]
	assert.True(t, l.Empty())

	l.PushFront(0)
	l.PushFront(1)
	l.PushFront(2)
	l.PushBack(3)
	l.PushFront(4)
	l.PushBack(5)

	assert.Equal(t, 6, l.Len())
	assert.Equal(t, []int{4, 2, 1, 0, 3, 5}, slices.Collect(l.All()))

	v, err := l.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	v, err = l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, 4, l.Len())

	l.PushBack(6)
	l.PushFront(7)
	l.PushBack(8)
	assert.Equal(t, []int{7, 2, 1, 0, 3, 6, 8}, slices.Collect(l.All()))

	steps := []struct {
		back bool
		want int
	}{
		{true, 8}, {true, 6}, {true, 3}, {false, 7}, {false, 2}, {true, 0}, {true, 1},
	}
	for _, s := range steps {
		if s.back {
			v, err = l.PopBack()
		} else {
			v, err = l.PopFront()
		}
		require.NoError(t, err)
		assert.Equal(t, s.want, v)
	}
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Empty())
}

func TestListUnderflow(t *testing.T) {
	l := New[string]()

	_, err := l.PopFront()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = l.PopBack()
	assert.ErrorIs(t, err, ErrEmptyContainer)

	l.PushBack("a")
	_, err = l.PopBack()
	require.NoError(t, err)
	_, err = l.PopFront()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
}

func TestListRemove(t *testing.T) {
	var l List[int]
	a := l.PushBack(1)
	b := l.PushBack(2)
	c := l.PushBack(3)

	assert.True(t, l.Remove(b))
	assert.False(t, b.Linked())
	assert.False(t, l.Remove(b), "removing twice is a no-op")
	assert.Equal(t, []int{1, 3}, slices.Collect(l.All()))
	assert.Same(t, c, a.Next())
	assert.Same(t, a, c.Prev())

	assert.True(t, l.Remove(a))
	assert.Same(t, c, l.Front())
	assert.True(t, l.Remove(c))
	assert.True(t, l.Empty())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	var other List[int]
	d := other.PushBack(4)
	assert.False(t, l.Remove(d), "elements of another list are ignored")
	assert.Equal(t, 1, other.Len())
}

func TestListIntrusiveInsert(t *testing.T) {
	type item struct {
		id   int
		link Element[*item]
	}

	var l List[*item]
	items := make([]*item, 4)
	for i := range items {
		items[i] = &item{id: i}
		items[i].link.Value = items[i]
	}

	l.InsertBack(&items[1].link)
	l.InsertFront(&items[0].link)
	l.InsertBack(&items[2].link)
	l.InsertBack(&items[3].link)

	var ids []int
	for it := range l.All() {
		ids = append(ids, it.id)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, ids)

	require.True(t, l.Remove(&items[2].link))
	assert.Equal(t, 3, l.Len())
	assert.Panics(t, func() { l.InsertBack(&items[1].link) }, "linked elements cannot be inserted twice")

	l.InsertFront(&items[2].link)
	front, err := l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 2, front.id)
}

func TestListClear(t *testing.T) {
	var l List[int]
	a := l.PushBack(1)
	l.PushBack(2)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.False(t, a.Linked())
	assert.Nil(t, a.Next())

	l.PushFront(3)
	assert.Equal(t, []int{3}, slices.Collect(l.All()))
}

func TestListAllStopsEarly(t *testing.T) {
	var l List[int]
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}
	var got []int
	for v := range l.All() {
		if v == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1}, got)
}
