package employee

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/validator"
	"github.com/attendance-admin/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFileService struct {
	uploadErr error
	uploaded  map[string][]byte
	deleted   []string
}

func newFakeFileService() *fakeFileService {
	return &fakeFileService{uploaded: make(map[string][]byte)}
}

func (f *fakeFileService) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	key := "avatars/" + employeeID + "/a.jpg"
	f.uploaded[key] = data
	return key, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeFileService) FileURL(key string) string {
	return "/uploads/" + key
}

type nopFile struct{ *bytes.Reader }

func (nopFile) Close() error { return nil }

func photo(name string, data []byte) (multipart.File, *multipart.FileHeader) {
	return nopFile{bytes.NewReader(data)}, &multipart.FileHeader{Filename: name, Size: int64(len(data))}
}

func strPtr(s string) *string { return &s }

func TestCreateEmployee_WithPhoto(t *testing.T) {
	store := memory.NewStore()
	files := newFakeFileService()
	svc := NewEmployeeService(store, files)

	f, fh := photo("me.png", []byte("png-bytes"))
	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Email:      " alice@example.com ",
		Username:   " Alice ",
		Password:   "secret123",
		CNICNo:     strPtr("12345-1234567-1"),
		Phone:      strPtr("  "),
		File:       f,
		FileHeader: fh,
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", *resp.Email)
	assert.Nil(t, resp.Phone)
	require.NotNil(t, resp.AvatarURL)
	assert.Equal(t, "/uploads/avatars/"+resp.ID+"/a.jpg", *resp.AvatarURL)

	stored, err := store.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AvatarPath)
	assert.Equal(t, []byte("png-bytes"), files.uploaded[*stored.AvatarPath])
}

func TestCreateEmployee_PhotoFailureIsNotFatal(t *testing.T) {
	store := memory.NewStore()
	files := newFakeFileService()
	files.uploadErr = errors.New("disk full")
	svc := NewEmployeeService(store, files)

	f, fh := photo("me.jpg", []byte("jpg"))
	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Username:   "bob",
		Password:   "secret123",
		File:       f,
		FileHeader: fh,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.AvatarURL)
	assert.Nil(t, resp.Email)

	list, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestCreateEmployee_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   employee.CreateEmployeeRequest
		field string
	}{
		{"missing username", employee.CreateEmployeeRequest{Password: "secret123"}, "username"},
		{"bad username", employee.CreateEmployeeRequest{Username: "a b", Password: "secret123"}, "username"},
		{"short password", employee.CreateEmployeeRequest{Username: "carol", Password: "123"}, "password"},
		{"bad email", employee.CreateEmployeeRequest{Username: "carol", Password: "secret123", Email: "nope"}, "email"},
		{"bad cnic", employee.CreateEmployeeRequest{Username: "carol", Password: "secret123", CNICNo: strPtr("12")}, "cnic_no"},
		{"bad photo type", func() employee.CreateEmployeeRequest {
			f, fh := photo("me.gif", []byte("gif"))
			return employee.CreateEmployeeRequest{Username: "carol", Password: "secret123", File: f, FileHeader: fh}
		}(), "photo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEmployeeService(memory.NewStore(), newFakeFileService())

			_, err := svc.CreateEmployee(context.Background(), tt.req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestCreateEmployee_Duplicate(t *testing.T) {
	store := memory.NewStore()
	svc := NewEmployeeService(store, newFakeFileService())

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{Username: "dave", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{Username: "DAVE", Password: "secret123"})
	assert.ErrorIs(t, err, employee.ErrUsernameExists)
}

func TestUpdateEmployee(t *testing.T) {
	store := memory.NewStore()
	svc := NewEmployeeService(store, newFakeFileService())
	existing := store.AddEmployee(employee.Employee{Username: "erin", Email: strPtr("erin@example.com")})

	resp, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:      existing.ID,
		Address: strPtr("House 1, Street 2"),
		Email:   strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "House 1, Street 2", *resp.Address)
	assert.Nil(t, resp.Email)

	_, err = svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{ID: existing.ID})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:    "8d0f6f0e-1a56-4c1b-9a7e-5f3f7a2b9c10",
		Phone: strPtr("123"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee_RemovesAttendanceAndAvatar(t *testing.T) {
	store := memory.NewStore()
	files := newFakeFileService()
	svc := NewEmployeeService(store, files)

	emp := store.AddEmployee(employee.Employee{Username: "frank"})
	require.NoError(t, store.UpdateAvatar(context.Background(), emp.ID, "avatars/frank.jpg"))
	store.AddEvent(emp.ID, true, time.Now())

	require.NoError(t, svc.DeleteEmployee(context.Background(), emp.ID))
	assert.Empty(t, store.Events())
	assert.Equal(t, []string{"avatars/frank.jpg"}, files.deleted)

	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), emp.ID), employee.ErrEmployeeNotFound)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, svc.DeleteEmployee(context.Background(), "nope"), &verrs)
}

func TestGetEmployee(t *testing.T) {
	store := memory.NewStore()
	svc := NewEmployeeService(store, newFakeFileService())
	emp := store.AddEmployee(employee.Employee{Username: "gina"})

	resp, err := svc.GetEmployee(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "gina", resp.Username)
	assert.Nil(t, resp.AvatarURL)
}
