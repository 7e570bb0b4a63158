package guard

import "github.com/bloghub/bloghub/internal/models"

// Role predicates used as endpoint-level admission gates. They only
// decide which role may call an endpoint at all; resource-level checks
// go through CanMutate.

type Predicate func(*models.User) bool

func IsAuthor(u *models.User) bool {
	return u != nil && u.Role == models.RoleAuthor
}

func IsReader(u *models.User) bool {
	return u != nil && u.Role == models.RoleReader
}

func IsAdmin(u *models.User) bool {
	return u != nil && u.Role == models.RoleAdmin
}

// CanMutate reports whether a user may delete or modify a specific blog:
// its author, or an admin override.
func CanMutate(blog *models.Blog, u *models.User) bool {
	if blog == nil || u == nil {
		return false
	}

	return blog.AuthorID == u.ID || u.Role == models.RoleAdmin
}
