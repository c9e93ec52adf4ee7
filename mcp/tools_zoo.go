package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/zoolabs/zoomcp/log"
	"github.com/zoolabs/zoomcp/zoo"
)

// InitZooTools returns the tool set of the zoo guide server
func InitZooTools(animals *zoo.Collection) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(AnimalsBySpeciesTool(animals)))
	tools = append(tools, newServerTool(AnimalDetailsTool(animals)))
	tools = append(tools, newServerTool(ListSpeciesTool(animals)))

	return tools
}

func AnimalsBySpeciesTool(animals *zoo.Collection) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_animals_by_species",
			mcp.WithDescription("List every animal of a species, with enclosure and trail. Matching is case-insensitive and exact; unknown species yield an empty list."),
			mcp.WithString("species", mcp.Required(), mcp.Description("Species name (e.g. meerkat, red panda)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Species string `json:"species" validate:"required"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.GetArguments(), &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			matched := animals.BySpecies(args.Species)
			log.Debug("tool call", "tool", "get_animals_by_species", "species", args.Species, "matched", len(matched))

			b, err := json.Marshal(matched)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(b)), nil
		}
}

func AnimalDetailsTool(animals *zoo.Collection) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_animal_details",
			mcp.WithDescription("Look up a single animal by name. Matching is case-insensitive and exact; an unknown name yields an empty object."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Animal name (e.g. Waddles)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Name string `json:"name" validate:"required"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.GetArguments(), &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			animal, ok := animals.ByName(args.Name)
			log.Debug("tool call", "tool", "get_animal_details", "name", args.Name, "found", ok)
			if !ok {
				// No-match keeps the empty-result contract of the lookup tools
				return mcp.NewToolResultText("{}"), nil
			}

			b, err := json.Marshal(animal)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(b)), nil
		}
}

func ListSpeciesTool(animals *zoo.Collection) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_species",
			mcp.WithDescription("List the distinct species in the zoo, sorted alphabetically"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			species := animals.Species()
			log.Debug("tool call", "tool", "list_species", "count", len(species))

			b, err := json.Marshal(species)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(b)), nil
		}
}
