// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	NewsroomService struct{ List, ByID, Create, Update, Delete, Categories, CreateCategory string }
}{
	NewsroomService: struct{ List, ByID, Create, Update, Delete, Categories, CreateCategory string }{
		List:           "list",
		ByID:           "byid",
		Create:         "create",
		Update:         "update",
		Delete:         "delete",
		Categories:     "categories",
		CreateCategory: "createcategory",
	},
}

func (NewsroomService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves stories with optional search, category, featured and
author filters, sorting and pagination.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "filter",
						Description: `raw filter values, all optional`,
						Type:        smd.Object,
						TypeName:    "StoryFilter",
						Properties: smd.PropertyList{
							{
								Name: "search",
								Type: smd.String,
							},
							{
								Name: "categoryId",
								Type: smd.String,
							},
							{
								Name: "featured",
								Type: smd.String,
							},
							{
								Name: "author",
								Type: smd.String,
							},
							{
								Name: "sort",
								Type: smd.String,
							},
							{
								Name: "order",
								Type: smd.String,
							},
							{
								Name: "limit",
								Type: smd.String,
							},
							{
								Name: "offset",
								Type: smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of stories with category fields`,
					Type:        smd.Array,
					TypeName:    "[]Story",
					Items: map[string]string{
						"$ref": "#/definitions/Story",
					},
					Definitions: map[string]smd.Definition{
						"Story": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
								{
									Name:     "excerpt",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name: "content",
									Type: smd.String,
								},
								{
									Name: "author",
									Type: smd.String,
								},
								{
									Name:     "image",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name: "featured",
									Type: smd.Boolean,
								},
								{
									Name:     "publishedAt",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name: "createdAt",
									Type: smd.String,
								},
								{
									Name: "updatedAt",
									Type: smd.String,
								},
								{
									Name: "categoryId",
									Type: smd.Integer,
								},
								{
									Name:     "categoryName",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name:     "categorySlug",
									Optional: true,
									Type:     smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "invalid filter value",
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single story by ID with its category fields.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "StoryByIDRequest",
						Properties: smd.PropertyList{
							{
								Name: "id",
								Type: smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `story`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Story",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name:     "excerpt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name:     "image",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "featured",
							Type: smd.Boolean,
						},
						{
							Name:     "publishedAt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
						{
							Name: "updatedAt",
							Type: smd.String,
						},
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name:     "categoryName",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "categorySlug",
							Optional: true,
							Type:     smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "story not found",
					500: "internal server error",
				},
			},
			"Create": {
				Description: `Create persists a new story.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "req",
						Description: `story fields; title, content, categoryId and author are required`,
						Type:        smd.Object,
						TypeName:    "CreateStoryRequest",
						Properties: smd.PropertyList{
							{
								Name: "title",
								Type: smd.String,
							},
							{
								Name: "content",
								Type: smd.String,
							},
							{
								Name: "author",
								Type: smd.String,
							},
							{
								Name: "categoryId",
								Type: smd.String,
							},
							{
								Name: "excerpt",
								Type: smd.String,
							},
							{
								Name: "image",
								Type: smd.String,
							},
							{
								Name: "featured",
								Type: smd.Boolean,
							},
							{
								Name: "publishedAt",
								Type: smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `created story`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Story",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name:     "excerpt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name:     "image",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "featured",
							Type: smd.Boolean,
						},
						{
							Name:     "publishedAt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
						{
							Name: "updatedAt",
							Type: smd.String,
						},
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name:     "categoryName",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "categorySlug",
							Optional: true,
							Type:     smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "missing or invalid field",
					404: "category not found",
					500: "internal server error",
				},
			},
			"Update": {
				Description: `Update applies a partial update; omitted fields are left untouched.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "req",
						Description: `story id plus the fields to change`,
						Type:        smd.Object,
						TypeName:    "UpdateStoryRequest",
						Properties: smd.PropertyList{
							{
								Name: "id",
								Type: smd.Integer,
							},
							{
								Name:     "title",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "content",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "author",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "categoryId",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "excerpt",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "image",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "featured",
								Optional: true,
								Type:     smd.Boolean,
							},
							{
								Name:     "publishedAt",
								Optional: true,
								Type:     smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `updated story`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Story",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name:     "excerpt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name:     "image",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "featured",
							Type: smd.Boolean,
						},
						{
							Name:     "publishedAt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
						{
							Name: "updatedAt",
							Type: smd.String,
						},
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name:     "categoryName",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "categorySlug",
							Optional: true,
							Type:     smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "invalid field",
					404: "story or category not found",
					500: "internal server error",
				},
			},
			"Delete": {
				Description: `Delete removes a story and returns its prior snapshot.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "StoryByIDRequest",
						Properties: smd.PropertyList{
							{
								Name: "id",
								Type: smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `deleted story`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Story",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name:     "excerpt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name:     "image",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "featured",
							Type: smd.Boolean,
						},
						{
							Name:     "publishedAt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
						{
							Name: "updatedAt",
							Type: smd.String,
						},
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name:     "categoryName",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "categorySlug",
							Optional: true,
							Type:     smd.String,
						},
					},
				},
				Errors: map[int]string{
					404: "story not found",
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories retrieves all categories sorted by name.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Type:        smd.Array,
					TypeName:    "[]Category",
					Items: map[string]string{
						"$ref": "#/definitions/Category",
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
								{
									Name:     "description",
									Optional: true,
									Type:     smd.String,
								},
								{
									Name: "createdAt",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"CreateCategory": {
				Description: `CreateCategory creates a category with a slug derived from its name.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "req",
						Description: `category name and optional description`,
						Type:        smd.Object,
						TypeName:    "CreateCategoryRequest",
						Properties: smd.PropertyList{
							{
								Name: "name",
								Type: smd.String,
							},
							{
								Name: "description",
								Type: smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `created category`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Category",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.Integer,
						},
						{
							Name: "name",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name:     "description",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "missing name or duplicate",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s NewsroomService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.NewsroomService.List:
		var args = struct {
			Filter StoryFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Filter))

	case RPC.NewsroomService.ByID:
		var args = struct {
			Req StoryByIDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.NewsroomService.Create:
		var args = struct {
			Req CreateStoryRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Create(ctx, args.Req))

	case RPC.NewsroomService.Update:
		var args = struct {
			Req UpdateStoryRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Update(ctx, args.Req))

	case RPC.NewsroomService.Delete:
		var args = struct {
			Req StoryByIDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Delete(ctx, args.Req))

	case RPC.NewsroomService.Categories:
		resp.Set(s.Categories(ctx))

	case RPC.NewsroomService.CreateCategory:
		var args = struct {
			Req CreateCategoryRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.CreateCategory(ctx, args.Req))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
