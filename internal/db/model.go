// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Name, Slug, Description, CreatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Session struct {
		ID, Token, UserID, ExpiresAt, CreatedAt string

		User string
	}
	Story struct {
		ID, CategoryID, Title, Slug, Excerpt, Content, Author, Image, Featured, PublishedAt, CreatedAt, UpdatedAt string

		Category string
	}
	User struct {
		ID, Email, Name, PasswordHash, CreatedAt string
	}
}{
	Category: struct {
		ID, Name, Slug, Description, CreatedAt string
	}{
		ID:          "categoryId",
		Name:        "name",
		Slug:        "slug",
		Description: "description",
		CreatedAt:   "createdAt",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Session: struct {
		ID, Token, UserID, ExpiresAt, CreatedAt string

		User string
	}{
		ID:        "sessionId",
		Token:     "token",
		UserID:    "userId",
		ExpiresAt: "expiresAt",
		CreatedAt: "createdAt",

		User: "User",
	},
	Story: struct {
		ID, CategoryID, Title, Slug, Excerpt, Content, Author, Image, Featured, PublishedAt, CreatedAt, UpdatedAt string

		Category string
	}{
		ID:          "storyId",
		CategoryID:  "categoryId",
		Title:       "title",
		Slug:        "slug",
		Excerpt:     "excerpt",
		Content:     "content",
		Author:      "author",
		Image:       "image",
		Featured:    "featured",
		PublishedAt: "publishedAt",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",

		Category: "Category",
	},
	User: struct {
		ID, Email, Name, PasswordHash, CreatedAt string
	}{
		ID:           "userId",
		Email:        "email",
		Name:         "name",
		PasswordHash: "passwordHash",
		CreatedAt:    "createdAt",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Session struct {
		Name, Alias string
	}
	Story struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Session: struct {
		Name, Alias string
	}{
		Name:  "sessions",
		Alias: "t",
	},
	Story: struct {
		Name, Alias string
	}{
		Name:  "stories",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int       `pg:"categoryId,pk"`
	Name        string    `pg:"name,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	Description *string   `pg:"description"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Session struct {
	tableName struct{} `pg:"sessions,alias:t,discard_unknown_columns"`

	ID        int       `pg:"sessionId,pk"`
	Token     string    `pg:"token,use_zero"`
	UserID    int       `pg:"userId,use_zero"`
	ExpiresAt time.Time `pg:"expiresAt,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`

	User *User `pg:"fk:userId,rel:has-one"`
}

type Story struct {
	tableName struct{} `pg:"stories,alias:t,discard_unknown_columns"`

	ID          int        `pg:"storyId,pk"`
	CategoryID  int        `pg:"categoryId,use_zero"`
	Title       string     `pg:"title,use_zero"`
	Slug        string     `pg:"slug,use_zero"`
	Excerpt     *string    `pg:"excerpt"`
	Content     string     `pg:"content,use_zero"`
	Author      string     `pg:"author,use_zero"`
	Image       *string    `pg:"image"`
	Featured    bool       `pg:"featured,use_zero"`
	PublishedAt *time.Time `pg:"publishedAt"`
	CreatedAt   time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time  `pg:"updatedAt,use_zero"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Email        string    `pg:"email,use_zero"`
	Name         string    `pg:"name,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	CreatedAt    time.Time `pg:"createdAt,use_zero"`
}
