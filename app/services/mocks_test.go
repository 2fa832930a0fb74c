package services

import (
	"fmt"

	"multiblog/app/models"
	"multiblog/app/repositories"
)

type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User), nextID: 1}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, u := range m.users {
		if u.Name == user.Name {
			return repositories.ErrExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.BeforeCreate()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByName(name string) (*models.User, error) {
	for _, u := range m.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type mockPostRepo struct {
	posts  map[int]*models.Post
	nextID int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[int]*models.Post), nextID: 1}
}

func (m *mockPostRepo) Create(post *models.Post) error {
	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *mockPostRepo) List() ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range m.posts {
		copied := *post
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	post.BeforeUpdate()
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

type mockCommentRepo struct {
	comments map[string]*models.Comment
	nextID   int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]*models.Comment), nextID: 1}
}

func pairKey(postID, commentID int) string {
	return fmt.Sprintf("%d:%d", postID, commentID)
}

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	comment.BeforeCreate()
	m.comments[pairKey(comment.PostID, comment.ID)] = comment
	return nil
}

func (m *mockCommentRepo) GetByID(postID, commentID int) (*models.Comment, error) {
	comment, exists := m.comments[pairKey(postID, commentID)]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *mockCommentRepo) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *mockCommentRepo) Delete(postID, commentID int) error {
	key := pairKey(postID, commentID)
	if _, exists := m.comments[key]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, key)
	return nil
}

func (m *mockCommentRepo) DeleteByPost(postID int) error {
	for key, comment := range m.comments {
		if comment.PostID == postID {
			delete(m.comments, key)
		}
	}
	return nil
}

type mockLikeRepo struct {
	likes map[string]bool
	posts *mockPostRepo
}

func newMockLikeRepo(posts *mockPostRepo) *mockLikeRepo {
	return &mockLikeRepo{likes: make(map[string]bool), posts: posts}
}

func (m *mockLikeRepo) Add(postID, userID int) error {
	key := pairKey(postID, userID)
	if m.likes[key] {
		return repositories.ErrExists
	}
	post, exists := m.posts.posts[postID]
	if !exists {
		return repositories.ErrNotFound
	}
	post.Likes++
	m.likes[key] = true
	return nil
}

func (m *mockLikeRepo) Exists(postID, userID int) (bool, error) {
	return m.likes[pairKey(postID, userID)], nil
}

func (m *mockLikeRepo) DeleteByPost(postID int) error {
	for key := range m.likes {
		var p, u int
		fmt.Sscanf(key, "%d:%d", &p, &u)
		if p == postID {
			delete(m.likes, key)
		}
	}
	return nil
}
