package compute

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// resultEntryName is the fixed archive entry carrying the structured
// result payload.
const resultEntryName = "result.json"

// maxArchiveSize bounds how much of a result archive is read into memory.
const maxArchiveSize = 16 << 20

// resultFetcher implements the ResultFetcher interface: it classifies the
// task status on chain and, for completed tasks, downloads and decodes the
// result archive from the results gateway.
type resultFetcher struct {
	hub        *bind.BoundContract
	gatewayURL string
	httpClient *http.Client
	logger     interfaces.Logger
}

// NewResultFetcher creates a result fetcher over the hub contract and the
// results gateway.
func NewResultFetcher(
	backend bind.ContractCaller,
	hubAddress string,
	gatewayURL string,
	logger interfaces.Logger,
) (interfaces.ResultFetcher, error) {
	if !common.IsHexAddress(hubAddress) {
		return nil, errors.NewDomainError(errors.ErrConfiguration, "invalid hub address")
	}

	parsed := mustParseABI(hubABI)
	return &resultFetcher{
		hub:        bind.NewBoundContract(common.HexToAddress(hubAddress), parsed, backend, nil, nil),
		gatewayURL: strings.TrimRight(gatewayURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}, nil
}

// Fetch returns the mapped task status and, when completed, the decoded
// result payload. A non-completed status is not an error, merely not ready.
func (f *resultFetcher) Fetch(ctx context.Context, taskID string) (*interfaces.TaskStatusResult, error) {
	var out []interface{}
	err := f.hub.Call(&bind.CallOpts{Context: ctx}, &out, "viewTaskStatus", common.HexToHash(taskID))
	if err != nil {
		return nil, errors.NewDomainError(errors.ErrNetwork, err.Error())
	}

	code, ok := out[0].(uint8)
	if !ok {
		return nil, errors.NewDomainError(errors.ErrNetwork, "unexpected task status encoding")
	}

	status := entities.MapTaskStatus(entities.TaskStatusCode(code))
	if status != entities.TaskStatusCompletedLabel {
		return &interfaces.TaskStatusResult{Status: status}, nil
	}

	result, err := f.downloadResult(ctx, taskID)
	if err != nil {
		return nil, err
	}

	return &interfaces.TaskStatusResult{
		Status: entities.TaskStatusCompletedLabel,
		Result: result,
	}, nil
}

// downloadResult fetches the result archive and decodes the fixed-name
// entry. A completed task must have a valid result, so any malformation
// here is a hard error.
func (f *resultFetcher) downloadResult(ctx context.Context, taskID string) (*entities.TaskResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/results/%s", f.gatewayURL, taskID), nil)
	if err != nil {
		return nil, errors.NewDomainError(errors.ErrNetwork, err.Error())
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewDomainError(errors.ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewDomainError(errors.ErrNetwork,
			fmt.Sprintf("results gateway returned status %d for task %s", resp.StatusCode, taskID))
	}

	archive, err := io.ReadAll(io.LimitReader(resp.Body, maxArchiveSize))
	if err != nil {
		return nil, errors.NewDomainError(errors.ErrNetwork, err.Error())
	}

	return DecodeResultArchive(archive)
}

// DecodeResultArchive opens the archive, locates the fixed-name entry and
// decodes its bytes as UTF-8 JSON.
func DecodeResultArchive(archive []byte) (*entities.TaskResult, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, errors.NewDomainError(errors.ErrResultFormat, "result is not a valid archive")
	}

	var entry *zip.File
	for _, file := range reader.File {
		if file.Name == resultEntryName {
			entry = file
			break
		}
	}
	if entry == nil {
		return nil, errors.NewDomainError(errors.ErrResultFormat,
			"archive is missing entry "+resultEntryName)
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, errors.NewDomainError(errors.ErrResultFormat, err.Error())
	}
	defer rc.Close()

	var result entities.TaskResult
	if err := json.NewDecoder(rc).Decode(&result); err != nil {
		return nil, errors.NewDomainError(errors.ErrResultFormat,
			"result entry is not valid JSON: "+err.Error())
	}

	if result.Payouts == nil {
		return nil, errors.NewDomainError(errors.ErrResultFormat, "result payload has no payouts list")
	}
	if result.Attestation == "" {
		return nil, errors.NewDomainError(errors.ErrResultFormat, "result payload has no attestation")
	}

	return &result, nil
}
