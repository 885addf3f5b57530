package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	PostKeyPrefix = "post:%d"
	TagKeyPrefix  = "tag:%d"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
	TagTTL  = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func TagKey(tagID uint) string {
	return fmt.Sprintf(TagKeyPrefix, tagID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateTag(ctx context.Context, tagID uint) {
	Invalidate(ctx, TagKey(tagID))
}
