package app

import (
	"fmt"

	categoryRepository "blogapp/internal/category/repository"
	categoryUsecase "blogapp/internal/category/usecase"
)

// CategoryRepository returns the category repository based on database driver.
func (c *Container) CategoryRepository() (categoryUsecase.CategoryRepository, error) {
	var err error
	c.categoryRepoInit.Do(func() {
		c.categoryRepo, err = c.initCategoryRepository()
		if err != nil {
			c.initErrors["categoryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryRepo"]; exists {
		return nil, storedErr
	}
	return c.categoryRepo, nil
}

// CategoryUseCase returns the category use case instance.
func (c *Container) CategoryUseCase() (categoryUsecase.UseCase, error) {
	var err error
	c.categoryUseCaseInit.Do(func() {
		c.categoryUseCase, err = c.initCategoryUseCase()
		if err != nil {
			c.initErrors["categoryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryUseCase"]; exists {
		return nil, storedErr
	}
	return c.categoryUseCase, nil
}

// initCategoryRepository creates the category repository instance.
func (c *Container) initCategoryRepository() (categoryUsecase.CategoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for category repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return categoryRepository.NewMySQLCategoryRepository(db), nil
	case "postgres":
		return categoryRepository.NewPostgreSQLCategoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCategoryUseCase creates the category use case with all its dependencies.
func (c *Container) initCategoryUseCase() (categoryUsecase.UseCase, error) {
	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for category use case: %w", err)
	}

	return categoryUsecase.NewCategoryUseCase(categoryRepo), nil
}
