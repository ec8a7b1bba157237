package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pathway-edu/website/internal/form"
	"github.com/pathway-edu/website/internal/model"
	"github.com/pathway-edu/website/internal/upstream"
)

var (
	ErrInvalidBlog      = errors.New("blog is missing title or content")
	ErrInvalidProgramme = errors.New("programme is missing title")
)

// ContentService reads blogs, programmes and the eligibility form from the
// content API for server rendered pages.
type ContentService struct {
	client *upstream.Client
}

func NewContentService(client *upstream.Client) *ContentService {
	return &ContentService{
		client: client,
	}
}

// Blogs returns all blogs, newest first.
func (s *ContentService) Blogs(ctx context.Context) ([]*model.Blog, error) {
	var blogs []*model.Blog
	err := s.client.GetJSON(ctx, upstream.PathBlogs, &blogs)
	if err != nil {
		return nil, fmt.Errorf("load blogs: %w", err)
	}

	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})

	return blogs, nil
}

// LatestBlogs returns at most n of the newest blogs.
func (s *ContentService) LatestBlogs(ctx context.Context, n int) ([]*model.Blog, error) {
	blogs, err := s.Blogs(ctx)
	if err != nil {
		return nil, err
	}
	if len(blogs) > n {
		blogs = blogs[:n]
	}
	return blogs, nil
}

func (s *ContentService) Blog(ctx context.Context, id string) (*model.Blog, error) {
	var blog *model.Blog
	err := s.client.GetJSON(ctx, upstream.BlogPath(id), &blog)
	if err != nil {
		return nil, fmt.Errorf("load blog %s: %w", id, err)
	}
	if blog == nil || blog.Title == "" || len(blog.Content) == 0 {
		return nil, ErrInvalidBlog
	}
	return blog, nil
}

func (s *ContentService) Programmes(ctx context.Context) ([]*model.Programme, error) {
	var programmes []*model.Programme
	err := s.client.GetJSON(ctx, upstream.PathProgrammes, &programmes)
	if err != nil {
		return nil, fmt.Errorf("load programmes: %w", err)
	}
	return programmes, nil
}

func (s *ContentService) Programme(ctx context.Context, id string) (*model.Programme, error) {
	var programme *model.Programme
	err := s.client.GetJSON(ctx, upstream.ProgrammePath(id), &programme)
	if err != nil {
		return nil, fmt.Errorf("load programme %s: %w", id, err)
	}
	if programme == nil || programme.Title == "" {
		return nil, ErrInvalidProgramme
	}
	if programme.ID == "" {
		programme.ID = id
	}
	return programme, nil
}

func (s *ContentService) EligibilityForm(ctx context.Context) (*form.Form, error) {
	resp, err := s.client.Get(ctx, upstream.PathEligibilityForm)
	if err != nil {
		return nil, fmt.Errorf("load eligibility form: %w", err)
	}
	return form.Decode(resp.Body)
}
