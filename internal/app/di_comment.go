package app

import (
	"fmt"

	commentRepository "blogapp/internal/comment/repository"
	commentUsecase "blogapp/internal/comment/usecase"
)

// CommentRepository returns the comment repository based on database driver.
func (c *Container) CommentRepository() (commentUsecase.CommentRepository, error) {
	var err error
	c.commentRepoInit.Do(func() {
		c.commentRepo, err = c.initCommentRepository()
		if err != nil {
			c.initErrors["commentRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["commentRepo"]; exists {
		return nil, storedErr
	}
	return c.commentRepo, nil
}

// CommentUseCase returns the comment use case instance.
func (c *Container) CommentUseCase() (commentUsecase.UseCase, error) {
	var err error
	c.commentUseCaseInit.Do(func() {
		c.commentUseCase, err = c.initCommentUseCase()
		if err != nil {
			c.initErrors["commentUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["commentUseCase"]; exists {
		return nil, storedErr
	}
	return c.commentUseCase, nil
}

// initCommentRepository creates the comment repository instance.
func (c *Container) initCommentRepository() (commentUsecase.CommentRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for comment repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return commentRepository.NewMySQLCommentRepository(db), nil
	case "postgres":
		return commentRepository.NewPostgreSQLCommentRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCommentUseCase creates the comment use case with all its dependencies.
func (c *Container) initCommentUseCase() (commentUsecase.UseCase, error) {
	commentRepo, err := c.CommentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment repository for comment use case: %w", err)
	}

	postRepo, err := c.PostRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get post repository for comment use case: %w", err)
	}

	return commentUsecase.NewCommentUseCase(commentRepo, postRepo), nil
}
