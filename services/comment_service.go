package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/dto"
	"fliquecms/internal/apperr"
	"fliquecms/internal/repository"
	"fliquecms/model"
)

// commentFetch loads one comment by id. Injected so the traversal helpers can
// be tested against an in-memory map.
type commentFetch func(ctx context.Context, id bson.ObjectID) (*model.Comment, error)

// CommentService manages threaded comments: creation wires the child into its
// parent's replies list, deletion removes whole subtrees, and reads return
// the thread materialized as nested nodes.
type CommentService struct {
	repo     *repository.CommentRepository
	maxDepth int
	now      func() time.Time
}

func NewCommentService(repo *repository.CommentRepository, maxDepth int) *CommentService {
	return &CommentService{repo: repo, maxDepth: maxDepth, now: time.Now}
}

func (s *CommentService) fetch(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a comment and, for replies, appends it to the parent's
// replies list. The parent is updated first so a missing parent fails the
// request before anything is written.
func (s *CommentService) Create(ctx context.Context, in dto.CreateCommentInput) (*model.Comment, error) {
	if in.Content == "" {
		return nil, apperr.New(apperr.Validation, "content is required")
	}
	if in.Lesson == "" {
		return nil, apperr.New(apperr.Validation, "lesson is required")
	}
	if in.User.Name == "" || in.User.Email == "" {
		return nil, apperr.New(apperr.Validation, "commenter name and email are required")
	}
	parentID, err := parseOptionalID(in.ParentID, "parentId")
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	comment := model.Comment{
		ID:        bson.NewObjectID(),
		User:      in.User,
		Content:   in.Content,
		Lesson:    in.Lesson,
		ParentID:  parentID,
		Replies:   []bson.ObjectID{},
		Timestamp: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if parentID != nil {
		if err := s.repo.PushReply(ctx, *parentID, comment.ID); err != nil {
			return nil, err
		}
	}
	saved, err := s.repo.Insert(ctx, comment)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *CommentService) Get(ctx context.Context, idHex string) (*dto.CommentNode, error) {
	id, err := parseID(idHex, "comment id")
	if err != nil {
		return nil, err
	}
	root, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildThread(ctx, s.fetch, *root, s.maxDepth)
}

// List returns the root comments matching the filters, each with its reply
// tree populated.
func (s *CommentService) List(ctx context.Context, lesson string, approved *bool, search string) ([]*dto.CommentNode, error) {
	roots, err := s.repo.FindRoots(ctx, lesson, approved, search)
	if err != nil {
		return nil, err
	}
	nodes := []*dto.CommentNode{}
	for _, root := range roots {
		node, err := buildThread(ctx, s.fetch, root, s.maxDepth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (s *CommentService) Update(ctx context.Context, idHex string, in dto.UpdateCommentInput) (*model.Comment, error) {
	id, err := parseID(idHex, "comment id")
	if err != nil {
		return nil, err
	}
	set := bson.M{"updatedAt": s.now().UTC()}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, apperr.New(apperr.Validation, "content cannot be empty")
		}
		set["content"] = *in.Content
	}
	if in.Approved != nil {
		set["approved"] = *in.Approved
	}
	return s.repo.Update(ctx, id, set)
}

func (s *CommentService) Approve(ctx context.Context, idHex string, approved bool) error {
	id, err := parseID(idHex, "comment id")
	if err != nil {
		return err
	}
	matched, err := s.repo.SetApproved(ctx, id, approved)
	if err != nil {
		return err
	}
	if !matched {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	return nil
}

// Delete removes a comment together with its whole reply subtree and detaches
// it from its parent's replies list.
func (s *CommentService) Delete(ctx context.Context, idHex string) (int64, error) {
	id, err := parseID(idHex, "comment id")
	if err != nil {
		return 0, err
	}
	root, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	ids, err := collectSubtree(ctx, s.fetch, *root)
	if err != nil {
		return 0, err
	}
	deleted, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	if root.ParentID != nil {
		if err := s.repo.PullReply(ctx, *root.ParentID, root.ID); err != nil {
			log.Printf("comment delete: detach %s from parent %s: %v",
				root.ID.Hex(), root.ParentID.Hex(), err)
		}
	}
	return deleted, nil
}

// BulkAction applies approve, disapprove or delete to each id. Failures are
// collected per id instead of aborting the batch; the refreshed root list is
// returned so the moderation view can re-render in one round trip.
func (s *CommentService) BulkAction(ctx context.Context, in dto.BulkActionInput) (*dto.BulkActionResult, error) {
	switch in.Action {
	case "approve", "disapprove", "delete":
	default:
		return nil, apperr.Newf(apperr.Validation, "unknown bulk action %q", in.Action)
	}
	if len(in.IDs) == 0 {
		return nil, apperr.New(apperr.Validation, "ids are required")
	}

	result := &dto.BulkActionResult{}
	for _, idHex := range in.IDs {
		var err error
		switch in.Action {
		case "approve":
			err = s.Approve(ctx, idHex, true)
		case "disapprove":
			err = s.Approve(ctx, idHex, false)
		case "delete":
			_, err = s.Delete(ctx, idHex)
		}
		if err != nil {
			result.Failed = append(result.Failed, idHex)
		}
	}
	result.Message = fmt.Sprintf("bulk %s completed: %d processed, %d failed",
		in.Action, len(in.IDs)-len(result.Failed), len(result.Failed))

	comments, err := s.List(ctx, "", nil, "")
	if err != nil {
		return nil, err
	}
	result.Comments = comments
	return result, nil
}

// collectSubtree walks the reply tree from root with an explicit stack and
// returns every reachable comment id, the root included. A seen set guards
// against reply cycles in corrupted data; dangling reply ids are skipped.
func collectSubtree(ctx context.Context, fetch commentFetch, root model.Comment) ([]bson.ObjectID, error) {
	seen := map[bson.ObjectID]bool{root.ID: true}
	ids := []bson.ObjectID{root.ID}
	stack := append([]bson.ObjectID{}, root.Replies...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true

		child, err := fetch(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		ids = append(ids, id)
		stack = append(stack, child.Replies...)
	}
	return ids, nil
}

// buildThread materializes a comment's reply tree as nested nodes. Depth is
// capped at maxDepth levels below the root; deeper replies are dropped, not
// an error. A visited set keeps cyclic reply links from looping.
func buildThread(ctx context.Context, fetch commentFetch, root model.Comment, maxDepth int) (*dto.CommentNode, error) {
	visited := map[bson.ObjectID]bool{root.ID: true}
	rootNode := &dto.CommentNode{Comment: root, Replies: []*dto.CommentNode{}}

	type frame struct {
		node  *dto.CommentNode
		depth int
	}
	stack := []frame{{node: rootNode}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth >= maxDepth {
			continue
		}
		for _, id := range f.node.Comment.Replies {
			if visited[id] {
				log.Printf("comment thread: skipping already-visited reply %s", id.Hex())
				continue
			}
			visited[id] = true

			child, err := fetch(ctx, id)
			if err != nil {
				if apperr.IsNotFound(err) {
					continue
				}
				return nil, err
			}
			childNode := &dto.CommentNode{Comment: *child, Replies: []*dto.CommentNode{}}
			f.node.Replies = append(f.node.Replies, childNode)
			stack = append(stack, frame{node: childNode, depth: f.depth + 1})
		}
	}
	return rootNode, nil
}
