package cafm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cafm-ess/report-backend-go/internal/config"
	"github.com/cafm-ess/report-backend-go/internal/domain/attendance"
	"github.com/cafm-ess/report-backend-go/internal/domain/leave"
	"github.com/cafm-ess/report-backend-go/internal/domain/report"
)

// Client is a thin JSON client for the CAFM employee self-service API.
// It implements report.DataSource.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ report.DataSource = (*Client)(nil)

func NewClient(cfg config.CAFMConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// APIError represents a non-2xx response from the CAFM API
type APIError struct {
	StatusCode int
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cafm API error [%d] %s: %s", e.StatusCode, e.Path, e.Message)
}

// get performs a GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{
			StatusCode: resp.StatusCode,
			Path:       path,
			Message:    string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func monthlyQuery(employeeID string, month, year int) url.Values {
	query := url.Values{}
	query.Set("employeeId", employeeID)
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))
	return query
}

// attendanceRecordDTO mirrors the upstream record shape.
type attendanceRecordDTO struct {
	EmployeeID   string  `json:"employeeId"`
	ProjectName  string  `json:"projectName"`
	Designation  string  `json:"designation"`
	Date         string  `json:"date"`
	PunchInTime  *string `json:"punchInTime"`
	PunchOutTime *string `json:"punchOutTime"`
	Status       string  `json:"status"`
}

type monthlyAttendanceResponse struct {
	Data []attendanceRecordDTO `json:"data"`
}

// MonthlyAttendance fetches the raw attendance records for a month.
func (c *Client) MonthlyAttendance(ctx context.Context, employeeID string, month, year int) ([]attendance.Record, error) {
	var body monthlyAttendanceResponse
	if err := c.get(ctx, "/api/attendance/monthly-report", monthlyQuery(employeeID, month, year), &body); err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(body.Data))
	for _, dto := range body.Data {
		records = append(records, attendance.Record{
			EmployeeID:   dto.EmployeeID,
			ProjectName:  dto.ProjectName,
			Designation:  dto.Designation,
			Date:         dto.Date,
			PunchInTime:  dto.PunchInTime,
			PunchOutTime: dto.PunchOutTime,
			Status:       dto.Status,
		})
	}
	return records, nil
}

type leaveBalancesDTO struct {
	EL      *float64 `json:"EL"`
	CL      *float64 `json:"CL"`
	SL      *float64 `json:"SL"`
	CompOff *float64 `json:"CompOff"`
}

type monthlyStatsDTO struct {
	WorkingDays   int              `json:"workingDays"`
	PresentDays   int              `json:"presentDays"`
	AbsentDays    int              `json:"absentDays"`
	LeaveBalances leaveBalancesDTO `json:"leaveBalances"`
}

type monthlyStatsResponse struct {
	Data monthlyStatsDTO `json:"data"`
}

// MonthlyStats fetches the monthly summary object.
func (c *Client) MonthlyStats(ctx context.Context, employeeID string, month, year int) (report.MonthlySummary, error) {
	var body monthlyStatsResponse
	if err := c.get(ctx, "/api/attendance/monthly-stats", monthlyQuery(employeeID, month, year), &body); err != nil {
		return report.MonthlySummary{}, err
	}

	return report.MonthlySummary{
		WorkingDays: body.Data.WorkingDays,
		PresentDays: body.Data.PresentDays,
		AbsentDays:  body.Data.AbsentDays,
		LeaveBalances: leave.Balances{
			EarnedLeave: body.Data.LeaveBalances.EL,
			CasualLeave: body.Data.LeaveBalances.CL,
			SickLeave:   body.Data.LeaveBalances.SL,
			CompOff:     body.Data.LeaveBalances.CompOff,
		},
	}, nil
}

type leaveHistoryEntryDTO struct {
	StartDate    string  `json:"startDate"`
	LeaveType    string  `json:"leaveType"`
	NumberOfDays float64 `json:"numberOfDays"`
	Status       string  `json:"status"`
	Reason       string  `json:"reason"`
	IsHalfDay    bool    `json:"isHalfDay"`
}

type leaveHistoryResponse struct {
	Data []leaveHistoryEntryDTO `json:"data"`
}

// LeaveHistory fetches the employee's leave requests.
func (c *Client) LeaveHistory(ctx context.Context, employeeID string) ([]leave.HistoryEntry, error) {
	query := url.Values{}
	query.Set("employeeId", employeeID)

	var body leaveHistoryResponse
	if err := c.get(ctx, "/api/leave/history", query, &body); err != nil {
		return nil, err
	}

	entries := make([]leave.HistoryEntry, 0, len(body.Data))
	for _, dto := range body.Data {
		entries = append(entries, leave.HistoryEntry{
			StartDate:    dto.StartDate,
			LeaveType:    dto.LeaveType,
			NumberOfDays: dto.NumberOfDays,
			Status:       dto.Status,
			Reason:       dto.Reason,
			IsHalfDay:    dto.IsHalfDay,
		})
	}
	return entries, nil
}
