package sqlinline

const QInsertDonation = `--sql 9b79c57c-3615-48a2-9d85-3426d5b3f7eb
insert into donations(id, campaign_id, donor_name, donor_email, amount, message, is_anonymous, notify_on_updates, donor_country, external_tx_id, created_at)
values (gen_random_uuid(), $1::uuid, $2::text, $3::text, $4::numeric, $5::text, $6::boolean, $7::boolean, $8::text, $9::text, now())
returning id, created_at;
`

const QListDonationsByCampaign = `--sql 7a08e4f6-cb8a-42c4-bd7f-291d6e913edc
select id, campaign_id, donor_name, donor_email, amount, message, is_anonymous, notify_on_updates, donor_country, external_tx_id, created_at
from donations
where campaign_id = $1::uuid
order by created_at desc, id desc;
`

const QSelectDonationByExternalTxID = `--sql f4c2a81d-0e37-45b6-9c04-d718e52b3a96
select id, campaign_id, donor_name, donor_email, amount, message, is_anonymous, notify_on_updates, donor_country, external_tx_id, created_at
from donations
where external_tx_id = $1::text;
`

const QListUpdateSubscribers = `--sql 2d94b1ce-60a7-4f3b-8e12-c57da0f68b49
select donor_name, donor_email from (
  select distinct on (lower(donor_email)) donor_name, donor_email, created_at
  from donations
  where campaign_id = $1::uuid and notify_on_updates
  order by lower(donor_email), created_at asc
) subscribers
order by created_at asc;
`
