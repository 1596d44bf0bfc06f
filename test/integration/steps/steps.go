package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/lexicon"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
	"github.com/glaze-finance/backend/test/integration/mock"
)

func registerSetupSteps(ctx *godog.ScenarioContext, t *TestContext) {
	ctx.Given(`^the API server is running$`, t.startServer)
	ctx.Given(`^the current time is "([^"]*)"$`, t.theCurrentTimeIs)
	ctx.Given(`^the language model is not configured$`, t.theLanguageModelIsNotConfigured)
	ctx.Given(`^the language model replies with:$`, t.theLanguageModelRepliesWith)
	ctx.Given(`^the language model fails with "([^"]*)"$`, t.theLanguageModelFailsWith)
	ctx.Given(`^user "([^"]*)" has the following transactions:$`, t.userHasTheFollowingTransactions)
	ctx.Given(`^user "([^"]*)" has a wallet "([^"]*)" with balance (\d+)$`, t.userHasAWalletWithBalance)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, t.theHeaderContainsTheKeyWith)
}

func registerRequestSteps(ctx *godog.ScenarioContext, t *TestContext) {
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)
	ctx.When(`^the insight cache expires$`, t.theInsightCacheExpires)
}

func registerResponseSteps(ctx *godog.ScenarioContext, t *TestContext) {
	ctx.Then(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, t.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, t.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, t.theResponseFieldShouldHaveItems)
}

func registerStoreSteps(ctx *godog.ScenarioContext, t *TestContext) {
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, t.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, t.theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the language model should have been called (\d+) times?$`, t.theLanguageModelShouldHaveBeenCalled)
	ctx.Then(`^the insight cache should contain (\d+) entr(?:y|ies)$`, t.theInsightCacheShouldContain)
}

// Setup steps

func (t *TestContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *TestContext) theLanguageModelIsNotConfigured() error {
	t.model.SetAvailable(false)
	return nil
}

func (t *TestContext) theLanguageModelRepliesWith(body *godog.DocString) error {
	t.model.AddReply(body.Content)
	return nil
}

func (t *TestContext) theLanguageModelFailsWith(message string) error {
	t.model.AddError(message)
	return nil
}

// userHasTheFollowingTransactions reads a table whose header names the columns:
// title, amount, category, source_wallet, date, type.
func (t *TestContext) userHasTheFollowingTransactions(userID string, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("transactions table needs a header and at least one row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i]] = cell.Value
		}

		amount, err := strconv.ParseInt(values["amount"], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", values["amount"], err)
		}

		date, err := dto.ParseTransactionDate(values["date"])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", values["date"], err)
		}

		category := lexicon.CategoryOrDefault(values["category"])
		wallet := values["source_wallet"]
		if wallet == "" {
			wallet = lexicon.DefaultWallet
		}

		tx := entity.NewTransaction(userID, values["title"], amount, category, wallet, date,
			lexicon.CategoryIcon(category), entity.TransactionType(values["type"]))
		if err := t.transactionRepo.Create(context.Background(), tx); err != nil {
			return err
		}
		t.lastTransactionID = tx.ID
	}

	return nil
}

func (t *TestContext) userHasAWalletWithBalance(userID, name string, balance int64) error {
	w := entity.NewWallet(userID, name, "#434343", "#000000", "💳", nil)
	w.Balance = balance
	return t.walletRepo.Create(context.Background(), w)
}

func (t *TestContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

// Request steps

func (t *TestContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *TestContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *TestContext) theInsightCacheExpires() error {
	t.redisServer.FastForward(25 * time.Hour)
	return nil
}

func (t *TestContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID)
}

func (t *TestContext) executeRequest(method, path string, payload []byte) error {
	if t.server == nil {
		return errors.New("the API server is not running")
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the created transaction so later steps can address it
	if id, ok := responseBody["id"].(string); ok && method == http.MethodPost && strings.Contains(path, "/transactions") {
		t.lastTransactionID = id
	}

	return nil
}

// Response steps

func (t *TestContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *TestContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *TestContext) theResponseShouldBeJSON() error {
	_, err := t.jsonBody()
	return err
}

func (t *TestContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *TestContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *TestContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *TestContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

// Store steps

func (t *TestContext) countRows(table string, criteria map[string]any) (int64, error) {
	tableModel, ok := t.db.GetModel(table)
	if !ok {
		return 0, fmt.Errorf("table '%s' not found in models", table)
	}

	query := t.db.DbConn.Model(reflect.New(reflect.TypeOf(tableModel).Elem()).Interface())
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (t *TestContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := t.countRows(table, nil)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *TestContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	count, err := t.countRows(table, criteria)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *TestContext) theLanguageModelShouldHaveBeenCalled(times int) error {
	if calls := t.model.Calls(); calls != times {
		return fmt.Errorf("expected %d language model calls, got %d", times, calls)
	}
	return nil
}

func (t *TestContext) theInsightCacheShouldContain(entries int) error {
	count, err := mock.CountKeys(t.redis, "insight:*")
	if err != nil {
		return err
	}
	if count != entries {
		return fmt.Errorf("expected %d cached insights, got %d", entries, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
