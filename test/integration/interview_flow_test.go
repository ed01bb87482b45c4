package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"furniture-catalog-be/internal/bootstrap"
	"furniture-catalog-be/internal/config"
	"furniture-catalog-be/internal/dto"
	"furniture-catalog-be/internal/model"
	"furniture-catalog-be/internal/pkg/serverutils"
	"furniture-catalog-be/internal/server"
	"furniture-catalog-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// Walks a full interview through the HTTP surface: login, start, teach one
// room with one furniture type and one description, finish, and verify the
// catalog rows landed.
func TestInterviewFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// Seed an admin directly, then log in through the API.
	adminPass := "admin123"
	adminHash, _ := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	adminId := uuid.New()
	admin := &model.AdminUser{
		Id:           adminId,
		Username:     "flow-admin-" + adminId.String()[:8],
		PasswordHash: string(adminHash),
		CreatedAt:    time.Now(),
	}
	db.Create(admin)
	defer db.Delete(&model.AdminUser{}, adminId)

	loginReq := dto.LoginRequest{Username: admin.Username, Password: adminPass}
	loginBody, _ := json.Marshal(loginReq)
	req := httptest.NewRequest("POST", "/api/auth/v1/admin/login", strings.NewReader(string(loginBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)

	var loginRes serverutils.BaseResponse[dto.LoginResponse]
	json.NewDecoder(resp.Body).Decode(&loginRes)
	token := loginRes.Data.Token
	assert.NotEmpty(t, token, "Admin token should not be empty")

	authedPost := func(path, body string) *serverutils.BaseResponse[json.RawMessage] {
		req := httptest.NewRequest("POST", path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		var res serverutils.BaseResponse[json.RawMessage]
		json.NewDecoder(resp.Body).Decode(&res)
		return &res
	}

	// 1. Start
	startRes := authedPost("/api/interview/v1/start", "")
	assert.True(t, startRes.Success)

	var started dto.StartInterviewResponse
	json.Unmarshal(startRes.Data, &started)
	assert.NotEqual(t, uuid.Nil, started.SessionId)
	assert.Contains(t, started.Greeting, "Ella")

	chat := func(message string) dto.ChatResponse {
		body, _ := json.Marshal(dto.ChatRequest{SessionId: started.SessionId, Message: message})
		res := authedPost("/api/interview/v1/chat", string(body))
		assert.True(t, res.Success, "chat should succeed for %q", message)
		var cr dto.ChatResponse
		json.Unmarshal(res.Data, &cr)
		return cr
	}

	roomName := "Flow Test Room " + adminId.String()[:8]

	// 2. Walk the wizard
	r := chat(roomName)
	assert.Contains(t, r.Reply, roomName)

	r = chat(roomName) // pick the room
	assert.Contains(t, r.Reply, "furniture")

	r = chat("Test Sofa, Test Lamp")
	assert.Contains(t, r.Reply, "Test Sofa")

	r = chat("Test Sofa")
	assert.Contains(t, r.Reply, "Test Sofa")

	// Whitespace-only input is rejected at the gateway and never becomes
	// a product row. The config count check below stays at exactly one.
	blankBody, _ := json.Marshal(dto.ChatRequest{SessionId: started.SessionId, Message: "   \t  "})
	req = httptest.NewRequest("POST", "/api/interview/v1/chat", strings.NewReader(string(blankBody)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req, -1)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var blankRes serverutils.BaseResponse[json.RawMessage]
	json.NewDecoder(resp.Body).Decode(&blankRes)
	assert.False(t, blankRes.Success)

	r = chat("Comes in leather and fabric, prices from $500 to $2000.")
	assert.Contains(t, r.Reply, "saved details")

	r = chat("3") // finish interview
	r = chat("yes")
	assert.True(t, r.Complete)

	// 3. Verify catalog rows
	var room model.Room
	err = db.Where("name = ?", roomName).First(&room).Error
	assert.NoError(t, err, "room should be persisted")

	var furnitureCount int64
	db.Model(&model.FurnitureType{}).Where("room_id = ?", room.Id).Count(&furnitureCount)
	assert.EqualValues(t, 2, furnitureCount)

	var configCount int64
	db.Model(&model.ProductConfig{}).
		Joins("JOIN furniture_types ON furniture_types.id = product_configs.furniture_type_id").
		Where("furniture_types.room_id = ?", room.Id).
		Count(&configCount)
	assert.EqualValues(t, 1, configCount)

	// 4. Completed sessions reject further messages with a 409 envelope
	body, _ := json.Marshal(dto.ChatRequest{SessionId: started.SessionId, Message: "hello again"})
	req = httptest.NewRequest("POST", "/api/interview/v1/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req, -1)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// 5. Unknown sessions answer HTTP 200 with an error envelope
	body, _ = json.Marshal(dto.ChatRequest{SessionId: uuid.New(), Message: "hello"})
	req = httptest.NewRequest("POST", "/api/interview/v1/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req, -1)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var notFound serverutils.BaseResponse[json.RawMessage]
	json.NewDecoder(resp.Body).Decode(&notFound)
	assert.False(t, notFound.Success)
	assert.Equal(t, 404, notFound.Code)

	// 6. No token means 401
	req = httptest.NewRequest("POST", "/api/interview/v1/start", nil)
	resp, _ = app.Test(req, -1)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Cleanup
	db.Exec("DELETE FROM interview_sessions WHERE id = ?", started.SessionId)
	db.Exec("DELETE FROM rooms WHERE id = ?", room.Id)
}
