package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-dealer-agent/internal/database"
	"go-dealer-agent/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// RunAgent answers an admin's natural-language question about the
// dealership. It can read inventory and KPI figures and adjust asking
// prices; it can never sell a bike - that transition has exactly one path
// and this is not it.
func RunAgent(userMessage string, apiKey string) (string, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")

	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the assistant for a bike resale dealership.

	RULES:
	1. UPDATE: If a user asks to change the asking price of a bike by NAME (e.g. "reprice the Classic 350"), do NOT ask them for the ID. Instead:
	   - Call 'check_inventory' to find the ID.
	   - Call 'update_selling_price' using that ID.

	2. READ: If a user asks for the PRICE, YEAR, STATUS or DETAILS of a bike:
	   - You MUST call 'check_inventory' to get the full list.
	   - Then read the JSON to find the specific bike and answer the user.

	3. NUMBERS: If the user asks about revenue, profit, expenses or how many bikes were sold, use 'get_kpi_report'.

	4. You cannot mark a bike as sold. Tell the user to use the sell form.

	USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_inventory",
					Description: "Get the full bike inventory. Use this to find ANY bike details like ID, Name, Year, Status, Asking Price or Cost.",
				},
				{
					Name:        "update_selling_price",
					Description: "Update the asking price of a specific bike using its ID",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"bike_id":   {Type: genai.TypeInteger, Description: "ID of the bike"},
							"new_price": {Type: genai.TypeNumber, Description: "New asking price"},
						},
						Required: []string{"bike_id", "new_price"},
					},
				},
				{
					Name:        "get_kpi_report",
					Description: "Get revenue, expenses, profit and sold/available counts for a year, optionally narrowed to one month.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"year":  {Type: genai.TypeInteger, Description: "Calendar year, e.g. 2026"},
							"month": {Type: genai.TypeInteger, Description: "Month 1-12, optional"},
						},
						Required: []string{"year"},
					},
				},
			},
		},
	}

	session := model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(systemPrompt))
	if err != nil {
		return "", err
	}

	// --- HANDLE TOOL CALLS ---
	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {

			if funcCall.Name == "check_inventory" {
				var bikes []models.Bike
				database.DB.Find(&bikes)

				type SimpleBike struct {
					ID     uint    `json:"id"`
					Name   string  `json:"name"`
					Year   int     `json:"year"`
					Status string  `json:"status"`
					Asking float64 `json:"asking_price"`
					Cost   float64 `json:"cost"`
				}
				var simpleList []SimpleBike
				for _, b := range bikes {
					simpleList = append(simpleList, SimpleBike{
						ID:     b.ID,
						Name:   b.BikeName,
						Year:   b.Year,
						Status: b.Status,
						Asking: b.SellingPrice,
						Cost:   b.PurchasePrice,
					})
				}

				jsonBytes, _ := json.Marshal(simpleList)

				toolResp := genai.FunctionResponse{
					Name:     "check_inventory",
					Response: map[string]interface{}{"inventory": string(jsonBytes)},
				}

				finalResp, err := session.SendMessage(ctx, toolResp)
				if err != nil {
					return "", err
				}

				return handleRecursiveToolCalls(ctx, session, finalResp), nil
			}

			if funcCall.Name == "update_selling_price" {
				return executeUpdatePrice(ctx, session, funcCall), nil
			}

			if funcCall.Name == "get_kpi_report" {
				return executeKPIReport(ctx, session, funcCall), nil
			}
		}
	}

	return printResponse(resp), nil
}

// --- HELPER FUNCTIONS ---

func handleRecursiveToolCalls(ctx context.Context, session *genai.ChatSession, resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			if funcCall.Name == "update_selling_price" {
				return executeUpdatePrice(ctx, session, funcCall)
			}
		}
	}
	return printResponse(resp)
}

func executeUpdatePrice(ctx context.Context, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	args := funcCall.Args
	bikeID := int(args["bike_id"].(float64))
	newPrice := args["new_price"].(float64)

	if newPrice < 0 {
		return "Error: the asking price cannot be negative."
	}

	result := database.DB.Model(&models.Bike{}).Where("id = ?", bikeID).Update("selling_price", newPrice)

	msg := "Success"
	if result.RowsAffected == 0 {
		msg = "Bike ID not found"
	}

	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "update_selling_price",
		Response: map[string]interface{}{"status": msg, "new_price": newPrice},
	})
	return printResponse(finalResp)
}

func executeKPIReport(ctx context.Context, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	args := funcCall.Args
	year := int(args["year"].(float64))

	var month *int
	if m, found := args["month"]; found {
		idx := int(m.(float64)) - 1 // the aggregator counts months from 0
		if idx >= 0 && idx <= 11 {
			month = &idx
		}
	}

	kpi, err := database.ComputeKPI(ctx, year, month)
	if err != nil {
		return "Error calculating the report."
	}

	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name: "get_kpi_report",
		Response: map[string]interface{}{
			"revenue":         kpi.TotalRevenue,
			"expenses":        kpi.TotalExpenses,
			"profit":          kpi.TotalProfit,
			"bikes_sold":      kpi.TotalBikesSold,
			"bikes_available": kpi.TotalBikesAvailable,
		},
	})
	return printResponse(finalResp)
}

func printResponse(resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
