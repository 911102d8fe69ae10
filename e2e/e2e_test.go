//go:build e2e

package e2e_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	crmadminBinary string
	apiURL         string
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "crmadmin-e2e-*")
	if err != nil {
		panic(err)
	}

	crmadminBinary = filepath.Join(tmpDir, "crmadmin")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", crmadminBinary, "./cmd/crmadmin")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build crmadmin binary: " + err.Error())
	}

	srv := httptest.NewServer(fakeAPI())
	apiURL = srv.URL + "/api"

	exitCode := m.Run()

	srv.Close()
	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")
	env.Setenv("CRMADMIN_BASE_URL", apiURL)

	binDir := filepath.Dir(crmadminBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}

// fakeAPI serves the handful of endpoints the scripts exercise.
func fakeAPI() http.Handler {
	mux := http.NewServeMux()
	reply := func(status int, body string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}
	}

	mux.HandleFunc("GET /api/Product/filter", reply(http.StatusOK, `{
		"statusCode": 200, "statusMessage": "OK",
		"data": {"pageNumber": 1, "pageSize": 10, "totalRecords": 1, "totalPages": 1,
		  "data": [{"productID": 7, "productName": "Widget", "productCode": "W-1", "price": 12.5, "taxPercentage": 18, "isActive": true}]}
	}`))
	mux.HandleFunc("DELETE /api/Product/{id}", reply(http.StatusOK, ""))
	mux.HandleFunc("GET /api/User/roles", reply(http.StatusOK, `[{"roleID": 1, "roleName": "Admin"}, {"roleID": 2, "roleName": "Sales"}]`))
	mux.HandleFunc("POST /api/users/create", reply(http.StatusBadRequest, `{"statusCode": 400, "statusMessage": "Email already exists"}`))
	return mux
}
