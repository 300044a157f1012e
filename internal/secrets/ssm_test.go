package secrets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

type fakeSSM struct {
	out   *ssm.GetParametersOutput
	err   error
	gotIn *ssm.GetParametersInput
	calls int
}

func (f *fakeSSM) GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error) {
	f.calls++
	f.gotIn = params
	return f.out, f.err
}

func param(name, value string) ssmtypes.Parameter {
	return ssmtypes.Parameter{Name: aws.String(name), Value: aws.String(value)}
}

func TestStore_Fetch(t *testing.T) {
	fake := &fakeSSM{
		out: &ssm.GetParametersOutput{
			Parameters: []ssmtypes.Parameter{
				param("Netatmo_Client_Id", "id"),
				param("Netatmo_Client_Secret", "secret"),
			},
		},
	}
	store := NewStore(fake, nil)

	values, err := store.Fetch(context.Background(), []string{"Netatmo_Client_Id", "Netatmo_Client_Secret"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if values["Netatmo_Client_Id"] != "id" || values["Netatmo_Client_Secret"] != "secret" {
		t.Errorf("values = %v, want both parameters resolved", values)
	}

	if fake.gotIn == nil {
		t.Fatal("GetParameters was not called")
	}
	if !aws.ToBool(fake.gotIn.WithDecryption) {
		t.Error("WithDecryption = false, want true")
	}
	if len(fake.gotIn.Names) != 2 {
		t.Errorf("requested %d names, want 2", len(fake.gotIn.Names))
	}
}

func TestStore_FetchErrors(t *testing.T) {
	t.Run("client error is wrapped", func(t *testing.T) {
		cause := errors.New("throttled")
		store := NewStore(&fakeSSM{err: cause}, nil)

		_, err := store.Fetch(context.Background(), []string{"Netatmo_Client_Id"})
		if !errors.Is(err, cause) {
			t.Errorf("err = %v, want wrapped %v", err, cause)
		}
	})

	t.Run("unknown parameter", func(t *testing.T) {
		store := NewStore(&fakeSSM{
			out: &ssm.GetParametersOutput{
				InvalidParameters: []string{"Netatmo_Password"},
			},
		}, nil)

		_, err := store.Fetch(context.Background(), []string{"Netatmo_Password"})
		if err == nil || !strings.Contains(err.Error(), "Netatmo_Password") {
			t.Errorf("err = %v, want mention of the invalid parameter", err)
		}
	})

	t.Run("empty value", func(t *testing.T) {
		store := NewStore(&fakeSSM{
			out: &ssm.GetParametersOutput{
				Parameters: []ssmtypes.Parameter{param("Netatmo_Username", "")},
			},
		}, nil)

		if _, err := store.Fetch(context.Background(), []string{"Netatmo_Username"}); err == nil {
			t.Error("expected error for empty parameter value")
		}
	})

	t.Run("name missing from response", func(t *testing.T) {
		store := NewStore(&fakeSSM{
			out: &ssm.GetParametersOutput{
				Parameters: []ssmtypes.Parameter{param("Netatmo_Client_Id", "id")},
			},
		}, nil)

		_, err := store.Fetch(context.Background(), []string{"Netatmo_Client_Id", "Netatmo_Client_Secret"})
		if err == nil || !strings.Contains(err.Error(), "Netatmo_Client_Secret") {
			t.Errorf("err = %v, want mention of the missing parameter", err)
		}
	})
}
