package cleaner_test

import (
	"context"
	"testing"

	"github.com/MartinWitt/teamcity-runas-plugin/internal/mock"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/cleaner"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestChainedCleaner(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	t.Run("Empty", func(t *testing.T) {
		require.NoError(t, cleaner.NewChainedCleaner(nil)(ctx))
	})

	t.Run("MultipleFailure", func(t *testing.T) {
		// All cleaners must be invoked in order, even in case
		// of failures. The error of the first cleaner is
		// returned.
		cleaner1 := mock.NewMockCleaner(ctrl)
		cleaner2 := mock.NewMockCleaner(ctrl)
		cleaner3 := mock.NewMockCleaner(ctrl)
		gomock.InOrder(
			cleaner1.EXPECT().Call(ctx),
			cleaner2.EXPECT().Call(ctx).Return(status.Error(codes.Internal, "Failed to remove staged file")),
			cleaner3.EXPECT().Call(ctx).Return(status.Error(codes.Internal, "Failed to clean staging directory")))

		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Failed to remove staged file"),
			cleaner.NewChainedCleaner([]cleaner.Cleaner{
				cleaner1.Call,
				cleaner2.Call,
				cleaner3.Call,
			})(ctx))
	})

	t.Run("MultipleSuccess", func(t *testing.T) {
		cleaner1 := mock.NewMockCleaner(ctrl)
		cleaner2 := mock.NewMockCleaner(ctrl)
		gomock.InOrder(
			cleaner1.EXPECT().Call(ctx),
			cleaner2.EXPECT().Call(ctx))

		require.NoError(t, cleaner.NewChainedCleaner([]cleaner.Cleaner{
			cleaner1.Call,
			cleaner2.Call,
		})(ctx))
	})
}
